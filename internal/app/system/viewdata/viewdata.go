// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/authz"
	nav "github.com/dalemusser/waffle/pantry/httpnav"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// User context (from auth middleware)
	IsLoggedIn bool
	Role       string
	UserName   string

	// Page context
	Title       string
	CurrentPath string
}

// NewBaseVM builds the common view model fields from the request.
func NewBaseVM(r *http.Request, title string) BaseVM {
	role, name, _, signedIn := authz.UserCtx(r)

	return BaseVM{
		IsLoggedIn:  signedIn,
		Role:        role,
		UserName:    name,
		Title:       title,
		CurrentPath: nav.CurrentPath(r),
	}
}
