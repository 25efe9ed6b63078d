package domain

import "strings"

const (
	// ManualProvisioningToken is the signing setting replaced in the project file.
	ManualProvisioningToken = "ProvisioningStyle = Manual;"
	// AutomaticProvisioningToken replaces ManualProvisioningToken.
	AutomaticProvisioningToken = "ProvisioningStyle = Automatic;"
	// EmptyTeamToken is the unset development team assignment.
	EmptyTeamToken = `DEVELOPMENT_TEAM = "";`
)

// TeamToken returns the development team assignment for teamID.
func TeamToken(teamID string) string {
	return "DEVELOPMENT_TEAM = " + teamID + ";"
}

// PatchReport counts the substitutions made by PatchProject.
type PatchReport struct {
	Provisioning int
	Team         int
}

// Complete reports whether both tokens were found.
func (r PatchReport) Complete() bool {
	return r.Provisioning > 0 && r.Team > 0
}

// PatchProject switches manual provisioning to automatic and assigns teamID
// to every empty DEVELOPMENT_TEAM. Running it again on its own output finds
// no empty team assignment.
func PatchProject(content, teamID string) (string, PatchReport) {
	report := PatchReport{
		Provisioning: strings.Count(content, ManualProvisioningToken),
		Team:         strings.Count(content, EmptyTeamToken),
	}

	content = strings.ReplaceAll(content, ManualProvisioningToken, AutomaticProvisioningToken)
	content = strings.ReplaceAll(content, EmptyTeamToken, TeamToken(teamID))

	return content, report
}
