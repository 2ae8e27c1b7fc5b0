package agent

import "testing"

func TestParseGoals(t *testing.T) {
	tests := []struct {
		args    []string
		want    Goals
		wantErr bool
	}{
		{nil, Goals{}, false},
		{[]string{"1000", "500"}, Goals{Gold: 1000, Wood: 500}, false},
		{[]string{"1000"}, Goals{}, true},
		{[]string{"1000", "500", "3"}, Goals{}, true},
		{[]string{"lots", "500"}, Goals{}, true},
		{[]string{"1000", "-1"}, Goals{}, true},
	}
	for _, tc := range tests {
		got, err := ParseGoals(tc.args)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseGoals(%v) error = %v, wantErr %v", tc.args, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseGoals(%v) = %+v, want %+v", tc.args, got, tc.want)
		}
	}
}

func TestGoalsMet(t *testing.T) {
	g := Goals{Gold: 200, Wood: 100}
	tests := []struct {
		gold, wood int
		want       bool
	}{
		{200, 100, true},
		{500, 500, true},
		{199, 100, false},
		{200, 99, false},
	}
	for _, tc := range tests {
		if got := g.Met(tc.gold, tc.wood); got != tc.want {
			t.Errorf("Met(%d, %d) = %v, want %v", tc.gold, tc.wood, got, tc.want)
		}
	}
	if !(Goals{}).Met(0, 0) {
		t.Error("zero goals are always met")
	}
}
