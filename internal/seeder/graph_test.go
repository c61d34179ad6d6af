package seeder

import (
	"context"
	"slices"
	"strings"
	"testing"
)

func noop(ctx context.Context, ds *Dataset) error { return nil }

func TestBuildOrder(t *testing.T) {
	g := NewDependencyGraph()
	g.AddStage(&Stage{Name: "daily_balance", Dependencies: []string{"account"}, Run: noop})
	g.AddStage(&Stage{Name: "fx_rate", Run: noop})
	g.AddStage(&Stage{Name: "account", Dependencies: []string{"customer"}, Run: noop})
	g.AddStage(&Stage{Name: "customer", Run: noop})

	order, err := g.BuildOrder()
	if err != nil {
		t.Fatalf("BuildOrder failed: %v", err)
	}

	want := []string{"customer", "account", "daily_balance", "fx_rate"}
	if !slices.Equal(order, want) {
		t.Errorf("Expected order %v, got %v", want, order)
	}
	if !slices.Equal(g.GetOrder(), want) {
		t.Errorf("Expected GetOrder to return the last order, got %v", g.GetOrder())
	}
}

func TestBuildOrderIsStable(t *testing.T) {
	build := func() []string {
		g := NewDependencyGraph()
		for _, name := range []string{"a", "b", "c", "d", "e"} {
			g.AddStage(&Stage{Name: name, Run: noop})
		}
		order, err := g.BuildOrder()
		if err != nil {
			t.Fatalf("BuildOrder failed: %v", err)
		}
		return order
	}

	first := build()
	for i := 0; i < 20; i++ {
		if got := build(); !slices.Equal(got, first) {
			t.Fatalf("Order changed between builds: %v vs %v", first, got)
		}
	}
}

func TestBuildOrderErrors(t *testing.T) {
	tests := []struct {
		name   string
		stages []*Stage
		want   string
	}{
		{
			name: "cycle",
			stages: []*Stage{
				{Name: "a", Dependencies: []string{"b"}, Run: noop},
				{Name: "b", Dependencies: []string{"a"}, Run: noop},
			},
			want: "circular dependency",
		},
		{
			name: "unknown dependency",
			stages: []*Stage{
				{Name: "a", Dependencies: []string{"missing"}, Run: noop},
			},
			want: "unknown stage missing",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewDependencyGraph()
			for _, s := range tc.stages {
				g.AddStage(s)
			}
			_, err := g.BuildOrder()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestSelfDependencyIgnored(t *testing.T) {
	g := NewDependencyGraph()
	g.AddStage(&Stage{Name: "a", Dependencies: []string{"a"}, Run: noop})

	order, err := g.BuildOrder()
	if err != nil || !slices.Equal(order, []string{"a"}) {
		t.Errorf("Expected [a], got %v (err %v)", order, err)
	}
}
