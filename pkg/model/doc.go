// Package model defines the database models for FolioBoard.
//
// This package contains GORM models that map to the FolioBoard SQLite schema.
//
// # Core Models
//
//   - User: Accounts, including the admin role and premium flag
//   - Project: Portfolio projects with view counters
//   - ProjectLike / ProjectComment: Social interactions on projects
//   - Company: Employers, with admin-controlled verification
//   - Job: Postings under a verified company
//   - JobApplication: One application per user per job
//   - BlogPost / BlogComment: Markdown blog with admin-only authorship
//   - Subscription: Premium tier membership
//
// Identifiers are random hex strings generated server-side. Timestamps are
// server-assigned; updated_at is bumped on every mutation.
package model
