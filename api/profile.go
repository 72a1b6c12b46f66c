package api

import "github.com/diligentcrypto/diligent/tabular"

// Links returns the asset's official links.
func (c *Client) Links(asset string) (*tabular.Table, error) {
	table := tabular.New("Name", "Link")

	p, err := c.profile(asset, "profile/general/overview/official_links", c.apiKey)
	if err != nil {
		return table, err
	}
	if p.General == nil || p.General.Overview == nil {
		return table, nil
	}

	for _, link := range p.General.Overview.OfficialLinks {
		table.Append(link.Name, link.Link)
	}
	return table, nil
}

// Roadmap returns the asset's milestone list. The date column is normalized
// to YYYY-MM-DD and columns empty across every row are dropped.
func (c *Client) Roadmap(asset string) (*tabular.Table, error) {
	table := tabular.New("Title", "Date", "Type", "Details")

	p, err := c.profile(asset, "profile/general/roadmap", c.apiKey)
	if err != nil {
		return table, err
	}
	if p.General == nil {
		return table, nil
	}

	for _, item := range p.General.Roadmap {
		table.Append(
			tabular.Cell(item.Title),
			parseDate(item.Date),
			tabular.Cell(item.Type),
			tabular.Cell(item.Details),
		)
	}
	if !table.Empty() {
		table.DropEmptyColumns()
	}
	return table, nil
}
