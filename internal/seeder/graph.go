package seeder

import "fmt"

type DependencyGraph struct {
	stages map[string]*Stage
	names  []string
	order  []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		stages: make(map[string]*Stage),
	}
}

func (g *DependencyGraph) AddStage(stage *Stage) {
	if _, exists := g.stages[stage.Name]; !exists {
		g.names = append(g.names, stage.Name)
	}
	g.stages[stage.Name] = stage
}

func (g *DependencyGraph) Stage(name string) *Stage {
	return g.stages[name]
}

// BuildOrder resolves a run order in which every stage follows its
// dependencies. Independent stages keep their registration order, so a
// fixed seed always consumes randomness in the same sequence.
func (g *DependencyGraph) BuildOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			return fmt.Errorf("circular dependency detected involving stage: %s", name)
		}
		if visited[name] {
			return nil
		}

		stage, ok := g.stages[name]
		if !ok {
			return fmt.Errorf("unknown stage: %s", name)
		}

		temp[name] = true
		for _, dep := range stage.Dependencies {
			if dep == name {
				continue
			}
			if _, ok := g.stages[dep]; !ok {
				return fmt.Errorf("stage %s depends on unknown stage %s", name, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range g.names {
		if !visited[name] {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}

	g.order = order
	return order, nil
}

func (g *DependencyGraph) GetOrder() []string {
	return g.order
}
