// Package authz evaluates request paths against an ordered table of
// {path pattern, required authority} rules.
//
// Evaluation is first-match-wins, and a path matching no rule falls through
// to a hard default: the caller must be authenticated. PUBLIC rules allow
// unconditionally, AUTHENTICATED rules require any valid session, and role
// authorities ("USER", "ADMIN") are matched by exact string equality against
// the caller's granted set. There is no hierarchy, so an ADMIN caller is not
// admitted by a USER-only rule.
//
// A typical table:
//
//	rules := authz.Rules{
//		{Pattern: "/", Require: authz.Public},
//		{Pattern: "/auth/login", Require: authz.Public},
//		{Pattern: "/auth/fail", Require: authz.Public},
//		{Pattern: "/user/signup", Require: authz.Public},
//		{Pattern: "/admin/*", Require: authz.AuthorityAdmin},
//		{Pattern: "/user/*", Require: authz.AuthorityUser},
//	}
//
// Decisions carry a reason (anonymous vs forbidden) so the HTTP layer can
// redirect unauthenticated callers to the login page while answering
// authenticated-but-unauthorized callers with 403.
package authz
