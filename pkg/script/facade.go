package script

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/sdfkit/sdfkit/pkg/environment"
	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

// Error taxonomy (spec §7): ScriptParse, ScriptRuntime, NoScene.
var (
	ErrScriptParse   = errors.New("script: parse error")
	ErrScriptRuntime = errors.New("script: runtime error")
	ErrNoScene       = errors.New("script: no scene returned")
)

// SceneResult is the output of one script evaluation: the resulting SDF
// graph and the environment the script configured (spec §4.6).
type SceneResult struct {
	Graph sdfgraph.Node
	Env   environment.Environment
}

// Run evaluates source as a single Lua chunk and returns its scene.
// Evaluation is synchronous on the calling goroutine and not safe for
// concurrent use: two goroutines must not share one Run call's state
// (spec §5, §9). The environment is reset to defaults before evaluation
// and captured on success (spec §4.6).
func Run(source string) (SceneResult, error) {
	L := lua.NewState()
	defer L.Close()

	cell := environment.NewCell()
	registerNodeType(L)
	registerConstructors(L)
	registerEnvironment(L, cell)
	registerMath(L)

	fn, err := L.LoadString(source)
	if err != nil {
		return SceneResult{}, fmt.Errorf("%w: %v", ErrScriptParse, err)
	}

	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return SceneResult{}, fmt.Errorf("%w: %v", ErrScriptRuntime, err)
	}

	ret := L.Get(-1)
	L.Pop(1)

	node, ok := nodeFromLValue(ret)
	if !ok {
		return SceneResult{}, fmt.Errorf(
			"%w: the script's last statement did not produce an sdf node; "+
				"Lua only returns a value from an explicit 'return' statement, "+
				"so a trailing expression like 'body:union(other)' without "+
				"'return' in front silently discards the scene",
			ErrNoScene)
	}

	return SceneResult{Graph: node, Env: cell.Snapshot()}, nil
}
