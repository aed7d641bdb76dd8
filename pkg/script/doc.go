// Package script is the embedded scripting facade — component C7. A
// program is a fragment of Lua, run to completion on the calling
// goroutine via github.com/yuin/gopher-lua, with every SDF primitive,
// combinator, modifier, transform, deformation, and repetition exposed
// both as a free function and as a method on the node userdata it
// returns (spec §4.6). Evaluation is synchronous and the facade is not
// safe for concurrent use: callers needing concurrency run one State per
// goroutine (spec §5, §9).
package script
