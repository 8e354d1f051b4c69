package domain

import "time"

// WarrantyExpiry computes purchase date + months at day precision.
// Unlike time.AddDate, a start day past the end of the target month clamps
// to the last day of that month (2024-01-31 + 1 month = 2024-02-29, not
// 2024-03-02).
func WarrantyExpiry(purchaseDate time.Time, months int) time.Time {
	purchaseDate = truncateToDay(purchaseDate)
	year := purchaseDate.Year()
	month := int(purchaseDate.Month()) + months
	year += (month - 1) / 12
	month = (month-1)%12 + 1

	day := purchaseDate.Day()
	if last := daysIn(year, time.Month(month)); day > last {
		day = last
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, purchaseDate.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
