package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
	"github.com/milk9111/dragonfight/prefabs"
	"golang.org/x/image/colornames"
)

// Scripts define onEnter(engine, state); it runs once per state entered.
const bossHookDispatchScript = `
if __state != "" {
	onEnter(__engine, __state)
}
`

type bossScriptRuntime struct {
	path     string
	compiled *tengo.Compiled
}

type bossScripts struct {
	cache map[ecs.Entity]*bossScriptRuntime
}

func newBossScripts() *bossScripts {
	return &bossScripts{cache: map[ecs.Entity]*bossScriptRuntime{}}
}

func (s *bossScripts) reset() {
	s.cache = map[ecs.Entity]*bossScriptRuntime{}
}

func (s *bossScripts) get(e ecs.Entity, path string) (*bossScriptRuntime, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty script path")
	}
	if rt, ok := s.cache[e]; ok && rt.path == path {
		return rt, nil
	}

	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}
	script := tengo.NewScript([]byte(string(src) + "\n" + bossHookDispatchScript))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	rt := &bossScriptRuntime{path: path, compiled: compiled}
	s.cache[e] = rt
	return rt, nil
}

func (s *bossScripts) onEnter(w *ecs.World, e ecs.Entity, path string, state component.BossState) error {
	rt, err := s.get(e, path)
	if err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", bossScriptEngine(w, e)); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", state.String()); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func bossScriptEngine(w *ecs.World, e ecs.Entity) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.UndefinedValue, nil
		}
		log.Printf("boss: entity=%v script: %s", e, scriptString(args[0]))
		return tengo.UndefinedValue, nil
	}}

	values["message"] = &tengo.UserFunction{Name: "message", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		msg := strings.TrimSpace(scriptString(args[0]))
		if msg == "" {
			return tengo.FalseValue, nil
		}
		w.Events().Push(ecs.Event{Type: ecs.EventMessage, Data: msg})
		return tengo.TrueValue, nil
	}}

	values["health"] = &tengo.UserFunction{Name: "health", Value: func(args ...tengo.Object) (tengo.Object, error) {
		hp, ok := ecs.Get(w, e, component.HealthComponent.Kind())
		if !ok {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: hp.Ratio()}, nil
	}}

	values["state"] = &tengo.UserFunction{Name: "state", Value: func(args ...tengo.Object) (tengo.Object, error) {
		rt, ok := ecs.Get(w, e, component.BossRuntimeComponent.Kind())
		if !ok {
			return &tengo.String{Value: ""}, nil
		}
		return &tengo.String{Value: rt.State.String()}, nil
	}}

	values["distance"] = &tengo.UserFunction{Name: "distance", Value: func(args ...tengo.Object) (tengo.Object, error) {
		rt, ok := ecs.Get(w, e, component.BossRuntimeComponent.Kind())
		if !ok {
			return &tengo.Float{Value: -1}, nil
		}
		self, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return &tengo.Float{Value: -1}, nil
		}
		target, ok := ecs.Get(w, ecs.Entity(rt.Target), component.TransformComponent.Kind())
		if !ok {
			return &tengo.Float{Value: -1}, nil
		}
		return &tengo.Float{Value: self.Position.Sub(target.Position).Len()}, nil
	}}

	values["set_color"] = &tengo.UserFunction{Name: "set_color", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(scriptString(args[0])))]
		if !ok {
			return tengo.FalseValue, nil
		}
		m, ok := ecs.Get(w, e, component.ModelComponent.Kind())
		if !ok {
			return tengo.FalseValue, nil
		}
		m.Color = nrgba(c)
		m.BaseColor = m.Color
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func scriptString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	if s, ok := tengo.ToString(obj); ok {
		return s
	}
	return obj.String()
}
