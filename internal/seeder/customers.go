package seeder

import (
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/sampledata/internal/model"
)

const (
	dobRangeDays     = 365 * 40
	createdRangeDays = 365
)

var dobBase = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

func customerID(seq int) string {
	return fmt.Sprintf("CUST%06d", seq)
}

// Customers generates count customers. A customer flagged for issues draws
// its email, phone and date of birth through the defect path.
func (g *DataGenerator) Customers(count int) []model.Customer {
	customers := make([]model.Customer, 0, max(count, 0))

	for i := 0; i < count; i++ {
		first := pick(g.rand, firstNames)
		last := pick(g.rand, lastNames)
		issue := g.chance(g.defects.CustomerIssueRate)

		c := model.Customer{
			ID:        customerID(i + 1),
			FirstName: first,
			LastName:  last,
		}
		if g.chance(g.defects.MissingIDRate) {
			c.ID = ""
			g.tally.Add(MissingCustomerID)
		}
		if g.chance(g.defects.MissingNameRate) {
			c.FirstName = ""
			g.tally.Add(MissingFirstName)
		}
		if g.chance(g.defects.MissingNameRate) {
			c.LastName = ""
			g.tally.Add(MissingLastName)
		}

		// The address is built from the drawn names even when they were blanked.
		c.Email = g.Email(first, last, issue)
		c.Phone = g.Phone(issue)
		c.DateOfBirth = g.Date(dobBase, dobRangeDays, issue)

		if g.chance(g.defects.MissingCountryRate) {
			g.tally.Add(MissingCountry)
		} else {
			c.Country = pick(g.rand, countries)
		}

		c.KYCStatus = pick(g.rand, model.KYCStatuses)
		c.CreatedDate = g.Date(g.reference, createdRangeDays, false)
		c.LastUpdated = model.DateOf(g.reference)

		customers = append(customers, c)
	}

	return customers
}
