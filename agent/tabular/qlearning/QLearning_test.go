package qlearning

import (
	"math"
	"testing"
)

const seed uint64 = 1923812

// testConfig returns a valid configuration for use across tests
func testConfig() Config {
	return Config{
		LearningRate:   0.1,
		DiscountFactor: 0.95,
		Epsilon:        1.0,
		EpsilonDecay:   0.995,
		EpsilonMin:     0.01,
	}
}

func TestNewValidatesConfig(t *testing.T) {
	tests := []struct {
		name   string
		adjust func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero learning rate", func(c *Config) { c.LearningRate = 0.0 }, false},
		{"unit learning rate", func(c *Config) { c.LearningRate = 1.0 }, true},
		{"learning rate above 1", func(c *Config) { c.LearningRate = 1.1 }, false},
		{"negative discount", func(c *Config) { c.DiscountFactor = -0.1 }, false},
		{"unit discount", func(c *Config) { c.DiscountFactor = 1.0 }, true},
		{"epsilon above 1", func(c *Config) { c.Epsilon = 1.5 }, false},
		{"negative epsilon", func(c *Config) { c.Epsilon = -0.5 }, false},
		{"zero decay", func(c *Config) { c.EpsilonDecay = 0.0 }, false},
		{"decay above 1", func(c *Config) { c.EpsilonDecay = 1.5 }, true},
		{"epsilon below floor", func(c *Config) {
			c.Epsilon = 0.001
			c.EpsilonMin = 0.01
		}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := testConfig()
			test.adjust(&config)

			agent, err := New[string, int](config, seed)
			if test.valid && err != nil {
				t.Fatalf("valid config rejected: %v", err)
			}
			if !test.valid {
				if err == nil {
					t.Fatal("invalid config accepted")
				}
				if !IsConfigError(err) {
					t.Errorf("want config error, have %v", err)
				}
				if agent != nil {
					t.Error("failed construction returned an agent")
				}
			}
		})
	}
}

func TestQValueMaterializes(t *testing.T) {
	agent, err := New[string, string](testConfig(), seed)
	if err != nil {
		t.Fatal(err)
	}

	if value := agent.QValue("s0", "a"); value != 0.0 {
		t.Errorf("unseen pair should read 0.0, have %v", value)
	}

	stats := agent.Stats()
	if stats.StatesVisited != 1 || stats.StateActionPairs != 1 {
		t.Errorf("read should materialize exactly one pair, have %d states, "+
			"%d pairs", stats.StatesVisited, stats.StateActionPairs)
	}

	agent.QValue("s0", "a")
	if pairs := agent.Stats().StateActionPairs; pairs != 1 {
		t.Errorf("repeat read grew the table to %d pairs", pairs)
	}
}

func TestUpdateTerminal(t *testing.T) {
	agent, err := New[string, string](testConfig(), seed)
	if err != nil {
		t.Fatal(err)
	}

	// Q(S0, A) starts at 0; a terminal reward of 10 moves it by
	// α * (10 - 0) = 1 exactly
	agent.Update("S0", "A", 10.0, "S1", []string{"A", "B"}, true)

	if value := agent.QValue("S0", "A"); value != 1.0 {
		t.Errorf("terminal update: want Q = 1.0, have %v", value)
	}
}

func TestUpdateNonTerminal(t *testing.T) {
	agent, err := New[string, string](testConfig(), seed)
	if err != nil {
		t.Fatal(err)
	}

	// Seed the next state so that max Q(S1, ·) = 2.0
	agent.Table().Set("S1", "B", 2.0)

	// target = -1 + 0.95 * 2 = 0.9, new Q = 0 + 0.1 * 0.9 = 0.09
	agent.Update("S0", "A", -1.0, "S1", []string{"A", "B"}, false)

	if value := agent.QValue("S0", "A"); math.Abs(value-0.09) > 1e-12 {
		t.Errorf("non-terminal update: want Q = 0.09, have %v", value)
	}
}

func TestUpdateTerminalIgnoresNextState(t *testing.T) {
	first, err := New[string, string](testConfig(), seed)
	if err != nil {
		t.Fatal(err)
	}
	second, err := New[string, string](testConfig(), seed)
	if err != nil {
		t.Fatal(err)
	}

	// Give the next states wildly different values in each agent
	first.Table().Set("next1", "B", 100.0)
	second.Table().Set("next2", "C", -100.0)

	first.Update("S0", "A", 5.0, "next1", []string{"B"}, true)
	second.Update("S0", "A", 5.0, "next2", []string{"C"}, true)

	v1, v2 := first.QValue("S0", "A"), second.QValue("S0", "A")
	if v1 != v2 {
		t.Errorf("terminal updates differing only in next state disagree: "+
			"%v != %v", v1, v2)
	}
}

func TestUpdateEmptyNextActions(t *testing.T) {
	agent, err := New[string, string](testConfig(), seed)
	if err != nil {
		t.Fatal(err)
	}

	// No legal next actions means a continuation value of 0
	agent.Update("S0", "A", 10.0, "S1", nil, false)

	if value := agent.QValue("S0", "A"); value != 1.0 {
		t.Errorf("want Q = 1.0, have %v", value)
	}
}

func TestBestActionProbesEveryAction(t *testing.T) {
	agent, err := New[string, string](testConfig(), seed)
	if err != nil {
		t.Fatal(err)
	}
	agent.Table().Set("s", "winner", 1.0)

	action, ok := agent.BestAction("s", []string{"winner", "loser", "other"})
	if !ok || action != "winner" {
		t.Fatalf("want winner, have %v (ok %v)", action, ok)
	}

	// Asking for the best action grows the table
	if pairs := agent.Stats().StateActionPairs; pairs != 3 {
		t.Errorf("probing 3 actions should leave 3 pairs, have %d", pairs)
	}
}

func TestBestActionEmpty(t *testing.T) {
	agent, err := New[string, string](testConfig(), seed)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := agent.BestAction("s", nil); ok {
		t.Error("empty action set should select no action")
	}
	if _, ok := agent.SelectAction("s", []string{}); ok {
		t.Error("empty action set should select no action")
	}
}

func TestBestActionUniformTieBreaking(t *testing.T) {
	agent, err := New[string, int](testConfig(), seed)
	if err != nil {
		t.Fatal(err)
	}

	actions := []int{0, 1, 2, 3}
	trials := 12000
	counts := make(map[int]int)

	// All estimates are 0, so every action ties at the maximum
	for i := 0; i < trials; i++ {
		action, ok := agent.BestAction("s", actions)
		if !ok {
			t.Fatal("no action selected")
		}
		counts[action]++
	}

	expected := float64(trials) / float64(len(actions))
	for _, action := range actions {
		frequency := float64(counts[action])
		if math.Abs(frequency-expected)/expected > 0.1 {
			t.Errorf("tie-breaking not uniform: action %d chosen %d times, "+
				"expected about %v", action, counts[action], expected)
		}
	}
}

func TestSelectActionAlwaysExplores(t *testing.T) {
	config := testConfig()
	config.Epsilon = 1.0
	agent, err := New[string, int](config, seed)
	if err != nil {
		t.Fatal(err)
	}

	// Make one action strictly dominant; with ε = 1 it must still be
	// chosen no more often than the rest
	agent.Table().Set("s", 0, 100.0)

	actions := []int{0, 1, 2}
	trials := 9000
	counts := make(map[int]int)
	for i := 0; i < trials; i++ {
		action, ok := agent.SelectAction("s", actions)
		if !ok {
			t.Fatal("no action selected")
		}
		counts[action]++
	}

	expected := float64(trials) / float64(len(actions))
	for _, action := range actions {
		frequency := float64(counts[action])
		if math.Abs(frequency-expected)/expected > 0.1 {
			t.Errorf("exploration not uniform: action %d chosen %d times, "+
				"expected about %v", action, counts[action], expected)
		}
	}
}

func TestSelectActionGreedyWhenEpsilonZero(t *testing.T) {
	config := testConfig()
	config.Epsilon = 0.0
	config.EpsilonMin = 0.0
	agent, err := New[string, int](config, seed)
	if err != nil {
		t.Fatal(err)
	}

	agent.Table().Set("s", 2, 0.5)

	actions := []int{0, 1, 2}
	for i := 0; i < 100; i++ {
		action, ok := agent.SelectAction("s", actions)
		if !ok || action != 2 {
			t.Fatalf("greedy selection chose %v (ok %v), want 2", action, ok)
		}
	}
}

func TestEvalModeIsGreedy(t *testing.T) {
	agent, err := New[string, int](testConfig(), seed) // ε = 1
	if err != nil {
		t.Fatal(err)
	}
	agent.Table().Set("s", 1, 0.5)

	agent.Eval()
	if !agent.IsEval() {
		t.Fatal("agent should report evaluation mode")
	}
	for i := 0; i < 100; i++ {
		if action, _ := agent.SelectAction("s", []int{0, 1, 2}); action != 1 {
			t.Fatalf("evaluation mode explored: chose %v", action)
		}
	}

	if agent.Epsilon() != 1.0 {
		t.Errorf("evaluation mode should not modify ε, have %v",
			agent.Epsilon())
	}

	agent.Train()
	if agent.IsEval() {
		t.Error("agent should report training mode")
	}
}

func TestDecayEpsilonFloor(t *testing.T) {
	config := testConfig()
	config.Epsilon = 1.0
	config.EpsilonDecay = 0.5
	config.EpsilonMin = 0.1
	agent, err := New[string, int](config, seed)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		agent.DecayEpsilon()
		if agent.Epsilon() < config.EpsilonMin {
			t.Fatalf("ε fell below the floor: %v", agent.Epsilon())
		}
	}

	if agent.Epsilon() != config.EpsilonMin {
		t.Errorf("ε should converge to exactly %v, have %v", config.EpsilonMin,
			agent.Epsilon())
	}
}

func TestEndEpisodeDecaysEpsilon(t *testing.T) {
	agent, err := New[string, int](testConfig(), seed)
	if err != nil {
		t.Fatal(err)
	}

	before := agent.Epsilon()
	agent.EndEpisode()
	if want := before * 0.995; agent.Epsilon() != want {
		t.Errorf("want ε = %v after one episode, have %v", want,
			agent.Epsilon())
	}
}

func TestStatsDoesNotMaterialize(t *testing.T) {
	agent, err := New[string, string](testConfig(), seed)
	if err != nil {
		t.Fatal(err)
	}

	stats := agent.Stats()
	if stats.StatesVisited != 0 || stats.StateActionPairs != 0 {
		t.Errorf("fresh agent should have empty stats, have %+v", stats)
	}
	if stats.CurrentEpsilon != 1.0 || stats.LearningRate != 0.1 ||
		stats.DiscountFactor != 0.95 {
		t.Errorf("wrong parameters reported: %+v", stats)
	}

	agent.Update("a", "x", 1.0, "b", []string{"x", "y"}, false)

	stats = agent.Stats()
	if stats.StatesVisited != 2 {
		t.Errorf("want 2 states visited, have %d", stats.StatesVisited)
	}
	// (a, x) plus the two probed next-state pairs
	if stats.StateActionPairs != 3 {
		t.Errorf("want 3 pairs, have %d", stats.StateActionPairs)
	}
}
