package ledger

import (
	"time"

	"github.com/kainat67-star/construction-management-sub000/internal/models"
)

// rentScheduleHorizon is how far past asOf the register projects
// upcoming rent months.
const rentScheduleHorizon = 3 // months

// GenerateRentSchedule reconciles the rent cadence rule against the
// property's existing rent credit entries and returns one record per
// month from the purchase month up to asOf plus three months.
//
// The schedule is a pure view: it is recomputed on every read and never
// stored. A month counts as received when any Credit entry with
// category "Rent" is dated inside it; the entry's own date becomes the
// received date regardless of the due date.
//
// Due days past the end of a short month clamp to its last day. The
// walk advances by (year, month) index rather than by date arithmetic,
// so a clamped February does not drag later months off their due day.
func GenerateRentSchedule(rental models.RentalDetails, purchaseDate time.Time, rentCredits []models.LedgerEntry, asOf time.Time) ([]models.RentRecord, error) {
	if rental.RentDueDay < 1 || rental.RentDueDay > 31 {
		return nil, invalidf("rentDueDay", "must be between 1 and 31, got %d", rental.RentDueDay)
	}
	if !rental.MonthlyRentAmount.IsPositive() {
		return nil, invalidf("monthlyRentAmount", "must be greater than zero, got %s", rental.MonthlyRentAmount)
	}

	received := make(map[int]models.LedgerEntry)
	for _, e := range rentCredits {
		if e.Type != models.EntryCredit || e.Category != models.CategoryRent {
			continue
		}
		key := monthKey(e.Date.Year(), e.Date.Month())
		if _, ok := received[key]; !ok {
			received[key] = e
		}
	}

	windowEnd := asOf.AddDate(0, rentScheduleHorizon, 0)
	year, month := purchaseDate.Year(), purchaseDate.Month()
	loc := purchaseDate.Location()

	var records []models.RentRecord
	for {
		due := clampedDate(year, month, rental.RentDueDay, loc)
		if due.After(windowEnd) {
			break
		}
		rec := models.RentRecord{
			Year:    year,
			Month:   month,
			DueDate: due,
			Amount:  rental.MonthlyRentAmount,
		}
		if e, ok := received[monthKey(year, month)]; ok {
			rec.IsReceived = true
			d := e.Date
			rec.ReceivedDate = &d
			rec.SourceEntryID = e.ID
		}
		records = append(records, rec)

		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return records, nil
}

func monthKey(year int, month time.Month) int {
	return year*100 + int(month)
}

// clampedDate builds the due date for a month, pulling the day back to
// the month's last day when it would overflow (31 in February, etc).
func clampedDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func daysIn(year int, month time.Month) int {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
