// Package audit emits security-relevant events in RFC5424 syslog format.
//
// Events cover authentication (login attempts), authorization denials, and
// entity mutations. Output goes to stdout by default; the format keeps
// structured data blocks so downstream collectors can index the actor,
// subject and result of every event.
//
// Auditing can be disabled with FOLIOBOARD_AUDIT_ENABLED=false.
package audit
