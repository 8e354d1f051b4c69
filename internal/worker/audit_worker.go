package worker

import (
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/service"
)

// StartAuditWorker registers the audit sink on the dispatcher.
func StartAuditWorker(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
