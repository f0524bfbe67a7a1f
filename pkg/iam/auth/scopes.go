package auth

import "strings"

// ============================================================================
// DOMAIN-SPECIFIC SCOPES - Resume Screening
// ============================================================================

const (
	// Screening scopes
	ScopeScreeningsAll    = "screenings:*"
	ScopeScreeningsRead   = "screenings:read"
	ScopeScreeningsWrite  = "screenings:write"
	ScopeScreeningsDelete = "screenings:delete"

	// Job spec scopes
	ScopeJobSpecsAll     = "jobspecs:*"
	ScopeJobSpecsRead    = "jobspecs:read"
	ScopeJobSpecsWrite   = "jobspecs:write"
	ScopeJobSpecsDelete  = "jobspecs:delete"
	ScopeJobSpecsPublish = "jobspecs:publish"

	// Profile scopes
	ScopeProfilesAll    = "profiles:*"
	ScopeProfilesRead   = "profiles:read"
	ScopeProfilesWrite  = "profiles:write"
	ScopeProfilesDelete = "profiles:delete"
	ScopeProfilesExport = "profiles:export"
)

// DomainScopeCategories organizes domain-specific scopes
var DomainScopeCategories = map[string][]string{
	"Screenings": {
		ScopeScreeningsAll,
		ScopeScreeningsRead,
		ScopeScreeningsWrite,
		ScopeScreeningsDelete,
	},
	"JobSpecs": {
		ScopeJobSpecsAll,
		ScopeJobSpecsRead,
		ScopeJobSpecsWrite,
		ScopeJobSpecsDelete,
		ScopeJobSpecsPublish,
	},
	"Profiles": {
		ScopeProfilesAll,
		ScopeProfilesRead,
		ScopeProfilesWrite,
		ScopeProfilesDelete,
		ScopeProfilesExport,
	},
}

// DomainScopeDescriptions provides descriptions for domain scopes
var DomainScopeDescriptions = map[string]string{
	ScopeScreeningsAll:    "Full access to screenings",
	ScopeScreeningsRead:   "View screening results",
	ScopeScreeningsWrite:  "Create and run screenings",
	ScopeScreeningsDelete: "Delete screenings",

	ScopeJobSpecsAll:     "Full access to job specs",
	ScopeJobSpecsRead:    "View job specs",
	ScopeJobSpecsWrite:   "Create and edit job specs",
	ScopeJobSpecsDelete:  "Delete job specs",
	ScopeJobSpecsPublish: "Publish and unpublish job specs",

	ScopeProfilesAll:    "Full access to candidate profiles",
	ScopeProfilesRead:   "View candidate profiles",
	ScopeProfilesWrite:  "Create and edit candidate profiles",
	ScopeProfilesDelete: "Delete candidate profiles",
	ScopeProfilesExport: "Export candidate profile data",
}

// hasScope checks a granted scope list against a required scope,
// honoring the "<domain>:*" wildcard
func hasScope(granted []string, required string) bool {
	for _, s := range granted {
		if s == required {
			return true
		}
		if domain, ok := strings.CutSuffix(s, ":*"); ok && strings.HasPrefix(required, domain+":") {
			return true
		}
	}
	return false
}
