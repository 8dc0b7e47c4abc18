package types

import (
	"math"
	"testing"
)

func TestRandomPolicySeededReproducible(t *testing.T) {
	actions := []Action{testAction("a"), testAction("b"), testAction("c")}
	p1 := NewRandomPolicySeeded(99)
	p2 := NewRandomPolicySeeded(99)
	for i := 0; i < 50; i++ {
		a1, ok1 := p1.NextAction(i, testObs(0), actions)
		a2, ok2 := p2.NextAction(i, testObs(0), actions)
		if !ok1 || !ok2 {
			t.Fatal("random policy returned no action")
		}
		if a1.Hash() != a2.Hash() {
			t.Fatalf("same seed diverged at step %d: %s vs %s", i, a1.Hash(), a2.Hash())
		}
	}
}

func TestSoftMaxPolicyUpdate(t *testing.T) {
	p := NewSoftMaxPolicy(0.5, 0.9, 1)
	actions := []Action{testAction("stay"), testAction("advance")}

	// the table row is lazily created by NextAction
	if _, ok := p.NextAction(0, testObs(0), actions); !ok {
		t.Fatal("no action")
	}

	p.Update(0, testObs(0), testAction("advance"), &StepResult{
		Observation: testObs(1),
		Reward:      1,
	})
	if got := p.QTable["0"]["advance"]; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Q[0][advance] = %v, want 0.5", got)
	}

	// a second update bootstraps from the best value of the next row
	p.QTable["1"] = map[string]float64{"advance": 0.8}
	p.Update(1, testObs(0), testAction("advance"), &StepResult{
		Observation: testObs(1),
		Reward:      1,
	})
	want := 0.5*0.5 + 0.5*(1+0.9*0.8)
	if got := p.QTable["0"]["advance"]; math.Abs(got-want) > 1e-9 {
		t.Errorf("Q[0][advance] = %v, want %v", got, want)
	}
}

func TestSoftMaxPolicyUpdateIgnoresUnseen(t *testing.T) {
	p := NewSoftMaxPolicy(0.5, 0.9, 1)
	p.Update(0, testObs(0), testAction("advance"), &StepResult{
		Observation: testObs(1),
		Reward:      1,
	})
	if len(p.QTable) != 0 {
		t.Errorf("update on an unseen observation created table rows")
	}
}

func TestSoftMaxPolicyPrefersHighValue(t *testing.T) {
	p := NewSoftMaxPolicy(0.3, 0.95, 7)
	actions := []Action{testAction("bad"), testAction("good")}
	p.QTable["0"] = map[string]float64{"bad": 0, "good": 5}

	picked := 0
	const samples = 1000
	for i := 0; i < samples; i++ {
		a, ok := p.NextAction(i, testObs(0), actions)
		if !ok {
			t.Fatal("no action")
		}
		if a.Hash() == "good" {
			picked++
		}
	}
	// softmax weight of the good action is exp(5)/(exp(5)+1), about 0.993
	if freq := float64(picked) / samples; freq < 0.95 {
		t.Errorf("high-value action picked with frequency %v", freq)
	}
}

func TestSoftMaxPolicyReset(t *testing.T) {
	p := NewSoftMaxPolicy(0.3, 0.95, 1)
	if _, ok := p.NextAction(0, testObs(0), []Action{testAction("a")}); !ok {
		t.Fatal("no action")
	}
	if len(p.QTable) == 0 {
		t.Fatal("table not populated")
	}
	p.Reset()
	if len(p.QTable) != 0 {
		t.Errorf("reset kept %d table rows", len(p.QTable))
	}
}
