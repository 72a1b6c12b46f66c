package api

import "github.com/diligentcrypto/diligent/tabular"

// Team returns the asset's contributors as two tables: individuals and
// organizations.
func (c *Client) Team(asset string) (*tabular.Table, *tabular.Table, error) {
	p, err := c.profile(asset, "profile/contributors", c.apiKey)
	if err != nil {
		individuals, organizations := peopleTables(nil)
		return individuals, organizations, err
	}
	individuals, organizations := peopleTables(p.Contributors)
	return individuals, organizations, nil
}

// Investors returns the asset's investors as two tables: individuals and
// organizations.
func (c *Client) Investors(asset string) (*tabular.Table, *tabular.Table, error) {
	p, err := c.profile(asset, "profile/investors", c.apiKey)
	if err != nil {
		individuals, organizations := peopleTables(nil)
		return individuals, organizations, err
	}
	individuals, organizations := peopleTables(p.Investors)
	return individuals, organizations, nil
}

// peopleTables shapes a contributors/investors sub-tree. Individuals get a
// synthesized Name (first + last); the raw name, slug, and avatar fields are
// not carried into the table. Organizations drop slug and logo.
func peopleTables(p *people) (*tabular.Table, *tabular.Table) {
	individuals := tabular.New("Name", "Title", "Description")
	organizations := tabular.New("Name", "Description")
	if p == nil {
		return individuals, organizations
	}

	for _, person := range p.Individuals {
		name := tabular.Cell(person.FirstName) + " " + tabular.Cell(person.LastName)
		individuals.Append(
			name,
			tabular.Cell(person.Title),
			tabular.Cell(person.Description),
		)
	}
	for _, org := range p.Organizations {
		organizations.Append(
			tabular.Cell(org.Name),
			tabular.Cell(org.Description),
		)
	}
	return individuals, organizations
}
