package core

import "strings"

// RootIdentity is the identity of the implicit root context, "/".
const RootIdentity = "/"

// JoinIdentity composes a base identity with a relative segment following
// the spec's unix-path-like rule: joining base "/a" with "b" yields "/a/b";
// if rel begins with "/" it is absolute and replaces base entirely.
//
// This is deliberately string-based, not filepath.Join: filepath.Join is
// platform-aware and would use "\" on Windows, which the spec explicitly
// does not support (Design Notes #3). Identities are always "/"-separated,
// on every platform.
func JoinIdentity(base, rel string) string {
	if strings.HasPrefix(rel, "/") {
		return rel
	}
	if base == "" {
		base = RootIdentity
	}
	if base == RootIdentity {
		return RootIdentity + rel
	}
	return strings.TrimSuffix(base, "/") + "/" + rel
}

// actletName returns the qualified name of an actlet owned by the actor at
// ownerIdentity, per §6's reserved-segment rule: "<owner_identity>/actlet/<name>".
func actletName(ownerIdentity, name string) string {
	return JoinIdentity(ownerIdentity, "actlet/"+name)
}

// timerName returns the qualified actlet name of a timer named name,
// nested under the reserved "actlet/timer" segment.
func timerName(name string) string {
	return "timer/" + name
}
