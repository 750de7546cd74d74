// Package store provides storage abstractions for the FolioBoard server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - UsersStore: Accounts, login lookup, role changes
//   - ProjectsStore: Portfolio projects, view counters, likes
//   - CompaniesStore: Employers and verification
//   - JobsStore: Job postings
//   - ApplicationsStore: Job applications
//   - BlogStore: Blog posts
//   - CommentsStore: Comments on projects and blog posts
//   - SubscriptionsStore: Premium tier membership
//
// Accessors return typed sentinel errors (ErrProjectNotFound and friends)
// rather than raw storage errors so callers can map failures to a uniform
// envelope. Conflicts from unique constraints surface as ErrDuplicate*.
//
// # Usage
//
//	store := gormstore.NewProjectsStore(db)
//	project, err := store.ProjectByID("abc123")
//	if err != nil {
//	    if errors.Is(err, store.ErrProjectNotFound) {
//	        // Handle not found
//	    }
//	}
package store
