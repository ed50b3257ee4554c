// Package authfail classifies authentication failures into a closed set of
// kinds, each with a fixed user-facing message and a redirect target.
//
// The taxonomy is a tagged union rather than an error-type hierarchy: adding
// a failure mode means adding a Kind and a Classify branch. Classify is a
// pure, total function: every cause maps to exactly one kind, with
// KindUnknown as the fallback, so no failure can escape the boundary
// unclassified.
//
// Unknown identifier and wrong password both classify as
// KindInvalidCredentials and share one generic message. Distinguishing them
// to the client would enable identifier enumeration; the distinct sentinels
// (ErrUnknownUser vs ErrBadCredentials) exist only for internal logging.
//
// Messages are percent-encoded before being placed in the redirect's query
// component, never embedded raw.
package authfail
