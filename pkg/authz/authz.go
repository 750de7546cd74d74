// Package authz implements the ownership and role policy for FolioBoard
// entities.
//
// Every check takes the request identity (nil for anonymous) and the loaded
// entity, and returns nil to allow or a sentinel error to deny. Denials are
// uniform: handlers map ErrUnauthenticated to 401 and ErrForbidden to 403
// without naming the attribute that caused the rejection.
//
// Mixed patches are authorized as independent field-group capability checks
// before anything is written. If any group present in the patch is not
// permitted the whole request is denied, so an applicant cannot smuggle a
// status change alongside an allowed resume update.
package authz

import (
	"errors"
	"fmt"

	"github.com/folioboard/folioboard/pkg/identity"
	"github.com/folioboard/folioboard/pkg/model"
)

// ErrUnauthenticated denies a request with no valid identity.
var ErrUnauthenticated = errors.New("authentication required")

// ErrForbidden denies an authenticated request that lacks permission.
var ErrForbidden = errors.New("permission denied")

// ErrAdminRequired is an ErrForbidden with the one reason the API surfaces
// verbatim, used by the admin-only endpoints.
var ErrAdminRequired = fmt.Errorf("%w: Admin access required", ErrForbidden)

// CanMutateProject allows update and delete of a project by its author.
func CanMutateProject(id *identity.Identity, p *model.Project) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if id.UserID != p.AuthorID {
		return ErrForbidden
	}
	return nil
}

// CanUpdateCompany allows updates by the owner or an admin. A patch that
// touches the verified flag requires admin regardless of ownership.
func CanUpdateCompany(id *identity.Identity, c *model.Company, patchesVerified bool) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if patchesVerified && !id.IsAdmin() {
		return ErrForbidden
	}
	if id.UserID != c.OwnerID && !id.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// CanDeleteCompany allows deletion by the owner or an admin.
func CanDeleteCompany(id *identity.Identity, c *model.Company) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if id.UserID != c.OwnerID && !id.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// CanVerifyCompany allows the verify endpoint for admins only.
func CanVerifyCompany(id *identity.Identity) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if !id.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

// CanCreateJob allows posting a job by the company owner, and only once the
// company has been verified by an admin.
func CanCreateJob(id *identity.Identity, c *model.Company) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if id.UserID != c.OwnerID {
		return ErrForbidden
	}
	if !c.Verified {
		return ErrForbidden
	}
	return nil
}

// CanMutateJob allows update and delete of a job by the owner of its company.
func CanMutateJob(id *identity.Identity, c *model.Company) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if id.UserID != c.OwnerID {
		return ErrForbidden
	}
	return nil
}

// CanApplyToJob allows applying by any authenticated user except the owner
// of the posting company.
func CanApplyToJob(id *identity.Identity, c *model.Company) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if id.UserID == c.OwnerID {
		return ErrForbidden
	}
	return nil
}

// CanReadApplication allows the applicant and the owner of the job's company.
func CanReadApplication(id *identity.Identity, app *model.JobApplication, companyOwnerID string) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if id.UserID != app.UserID && id.UserID != companyOwnerID {
		return ErrForbidden
	}
	return nil
}

// ApplicationFields names the field groups an application patch may touch.
// Each group is authorized independently.
type ApplicationFields struct {
	Status    bool // company owner only
	Documents bool // resume URL and cover letter; applicant only
}

// CanPatchApplication authorizes a sparse application patch. All field
// groups present must be individually permitted or the whole patch is
// denied; nothing is ever partially applied.
func CanPatchApplication(id *identity.Identity, app *model.JobApplication, companyOwnerID string, fields ApplicationFields) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if !fields.Status && !fields.Documents {
		return ErrForbidden
	}
	if fields.Status && id.UserID != companyOwnerID {
		return ErrForbidden
	}
	if fields.Documents && id.UserID != app.UserID {
		return ErrForbidden
	}
	return nil
}

// CanDeleteApplication allows withdrawal by the applicant only.
func CanDeleteApplication(id *identity.Identity, app *model.JobApplication) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if id.UserID != app.UserID {
		return ErrForbidden
	}
	return nil
}

// CanWriteBlog allows blog post create, update and delete for admins.
func CanWriteBlog(id *identity.Identity) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if !id.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

// CanComment allows comment creation by any authenticated identity.
func CanComment(id *identity.Identity) error {
	if id == nil {
		return ErrUnauthenticated
	}
	return nil
}

// CanDeleteComment allows deletion by the comment author or an admin.
func CanDeleteComment(id *identity.Identity, c *model.Comment) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if id.UserID != c.AuthorID && !id.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// CanUpdateProfile allows a user to patch their own record.
func CanUpdateProfile(id *identity.Identity, u *model.User) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if id.UserID != u.ID {
		return ErrForbidden
	}
	return nil
}
