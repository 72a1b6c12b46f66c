package api

import "github.com/diligentcrypto/diligent/tabular"

// ProjectInfo holds the project/technology write-ups and the related
// security tables.
type ProjectInfo struct {
	// Info has two Metric/Value rows: project details and technology details.
	Info            *tabular.Table
	Repositories    *tabular.Table
	Audits          *tabular.Table
	Vulnerabilities *tabular.Table
}

// ProjectProductInfo returns the asset's project and technology details plus
// its public repositories, audits, and known vulnerabilities. These profile
// sections are public; the key header is sent empty.
func (c *Client) ProjectProductInfo(asset string) (ProjectInfo, error) {
	result := ProjectInfo{
		Info:            tabular.New("Metric", "Value"),
		Repositories:    tabular.New("Name", "Link", "License Type"),
		Audits:          tabular.New("Title", "Details", "Date"),
		Vulnerabilities: tabular.New("Title", "Details", "Date", "Type"),
	}

	p, err := c.profile(asset, "profile/general/overview/project_details,profile/technology", "")
	if err != nil {
		return result, err
	}

	if p.General != nil && p.General.Overview != nil {
		result.Info.Append("Project Details", p.General.Overview.ProjectDetails)
	}
	if p.Technology == nil {
		return result, nil
	}

	result.Info.Append("Technology Details", p.Technology.Overview.TechnologyDetails)

	for _, repo := range p.Technology.Overview.ClientRepositories {
		result.Repositories.Append(
			tabular.Cell(repo.Name),
			tabular.Cell(repo.Link),
			tabular.Cell(repo.LicenseType),
		)
	}
	for _, a := range p.Technology.Security.Audits {
		result.Audits.Append(
			tabular.Cell(a.Title),
			tabular.Cell(a.Details),
			parseDate(a.Date),
		)
	}
	for _, v := range p.Technology.Security.KnownExploitsAndVulnerabilities {
		result.Vulnerabilities.Append(
			tabular.Cell(v.Title),
			tabular.Cell(v.Details),
			parseDate(v.Date),
			tabular.Cell(v.Type),
		)
	}
	return result, nil
}
