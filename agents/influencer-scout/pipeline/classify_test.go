package pipeline

import "testing"

func TestIsGamingChannel(t *testing.T) {
	tests := []struct {
		name        string
		description string
		titles      []string
		want        bool
	}{
		{
			name:        "Developer channel rejected",
			description: "game developer making my game",
			titles:      nil,
			want:        false,
		},
		{
			name:        "Content creator accepted",
			description: "gameplay playthrough lets play speedrun",
			titles:      nil,
			want:        true,
		},
		{
			name:        "Signals from titles count",
			description: "",
			titles:      []string{"Celeste gameplay part 4", "Hollow Knight playthrough"},
			want:        true,
		},
		{
			name:        "Off-topic outweighs gaming",
			description: "gameplay sometimes but mostly vlog recipe cooking makeup",
			titles:      nil,
			want:        false,
		},
		{
			name:        "Tie between off-topic and gaming favors acceptance",
			description: "gameplay playthrough vlog cooking",
			titles:      nil,
			want:        true,
		},
		{
			name:        "Single creator signal insufficient",
			description: "casual gamer",
			titles:      nil,
			want:        false,
		},
		{
			name:        "Empty description rejected",
			description: "",
			titles:      nil,
			want:        false,
		},
		{
			name:        "Single dev phrase scores double and rejects",
			description: "indie dev",
			titles:      nil,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsGamingChannel(DefaultClassifierKeywords, tt.description, tt.titles)
			if got != tt.want {
				t.Errorf("IsGamingChannel(%q, %v) = %v, want %v", tt.description, tt.titles, got, tt.want)
			}
		})
	}
}
