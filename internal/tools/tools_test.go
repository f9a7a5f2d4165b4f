package tools

import "testing"

func TestEstimateOneRM(t *testing.T) {
	r, err := EstimateOneRM(100, 10)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	// 100 × (1 + 10/30) = 133.33 → 133
	if r.Max != 133 {
		t.Errorf("max = %v, want 133", r.Max)
	}
	if r.Hypertrophy != 100 {
		t.Errorf("hypertrophy = %v, want 100", r.Hypertrophy)
	}
	if r.Strength != 120 {
		t.Errorf("strength = %v, want 120", r.Strength)
	}
	if r.Power != 67 {
		t.Errorf("power = %v, want 67", r.Power)
	}
}

func TestEstimateOneRMSingleRep(t *testing.T) {
	r, err := EstimateOneRM(140, 1)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if r.Max != 145 {
		t.Errorf("max = %v, want 145", r.Max)
	}
}

func TestEstimateOneRMRejectsZero(t *testing.T) {
	if _, err := EstimateOneRM(0, 10); err == nil {
		t.Error("zero weight accepted")
	}
	if _, err := EstimateOneRM(100, 0); err == nil {
		t.Error("zero reps accepted")
	}
}

func TestPlatesPerSide(t *testing.T) {
	// 100kg total, 20kg bar → 40kg per side → 25 + 15
	plates, err := PlatesPerSide(100, 20)
	if err != nil {
		t.Fatalf("plates: %v", err)
	}
	want := []PlateCount{{25, 1}, {15, 1}}
	if len(plates) != len(want) {
		t.Fatalf("plates = %+v, want %+v", plates, want)
	}
	for i := range want {
		if plates[i] != want[i] {
			t.Errorf("plates[%d] = %+v, want %+v", i, plates[i], want[i])
		}
	}
}

func TestPlatesPerSideFractional(t *testing.T) {
	// 62.5kg total, 20kg bar → 21.25 per side → 20 + 1.25
	plates, err := PlatesPerSide(62.5, 20)
	if err != nil {
		t.Fatalf("plates: %v", err)
	}
	want := []PlateCount{{20, 1}, {1.25, 1}}
	if len(plates) != len(want) {
		t.Fatalf("plates = %+v, want %+v", plates, want)
	}
	for i := range want {
		if plates[i] != want[i] {
			t.Errorf("plates[%d] = %+v, want %+v", i, plates[i], want[i])
		}
	}
}

func TestPlatesPerSideBarOnly(t *testing.T) {
	plates, err := PlatesPerSide(20, 20)
	if err != nil {
		t.Fatalf("plates: %v", err)
	}
	if len(plates) != 0 {
		t.Errorf("plates = %+v, want none", plates)
	}
}

func TestPlatesPerSideTargetBelowBar(t *testing.T) {
	if _, err := PlatesPerSide(15, 20); err == nil {
		t.Error("target below bar accepted")
	}
}

func TestEstimateTDEE(t *testing.T) {
	// Male, 70kg, 175cm, 25y: BMR = 700 + 1093.75 − 125 + 5 = 1673.75 → 1674
	r, err := EstimateTDEE("male", 70, 175, 25, 1.2)
	if err != nil {
		t.Fatalf("tdee: %v", err)
	}
	if r.BMR != 1674 {
		t.Errorf("bmr = %v, want 1674", r.BMR)
	}
	if r.Maintenance != 2009 { // 1673.75 × 1.2 = 2008.5 → 2009
		t.Errorf("maintenance = %v, want 2009", r.Maintenance)
	}
	if r.Bulk != r.Maintenance+300 || r.Cut != r.Maintenance-300 {
		t.Errorf("bulk/cut = %v/%v", r.Bulk, r.Cut)
	}
}

func TestEstimateTDEEFemale(t *testing.T) {
	// Female, 60kg, 165cm, 30y: BMR = 600 + 1031.25 − 150 − 161 = 1320.25 → 1320
	r, err := EstimateTDEE("female", 60, 165, 30, 1.375)
	if err != nil {
		t.Fatalf("tdee: %v", err)
	}
	if r.BMR != 1320 {
		t.Errorf("bmr = %v, want 1320", r.BMR)
	}
}
