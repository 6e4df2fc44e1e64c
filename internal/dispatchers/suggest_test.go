package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "identical strings", a: "deploy", b: "deploy", want: 0},
		{name: "one character difference", a: "deploy", b: "deploys", want: 1},
		{name: "typo - transposition", a: "version", b: "verison", want: 2},
		{name: "completely different", a: "env", b: "xyz", want: 3},
		{name: "empty string a", a: "", b: "deploy", want: 6},
		{name: "empty string b", a: "deploy", b: "", want: 6},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "case insensitive", a: "DEPLOY", b: "deploy", want: 0},
		{name: "missing letter", a: "config", b: "confg", want: 1},
		{name: "extra letter", a: "config", b: "confiig", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := levenshtein(tt.a, tt.b)
			require.Equal(t, tt.want, got)
		})
	}
}

func taskWithChildren(names ...string) *Task {
	root := &Task{Name: "taskcmd", Tasks: make(map[string]*Task)}
	for _, name := range names {
		root.Tasks[name] = &Task{Name: name}
	}
	return root
}

func TestFindSimilarCommands(t *testing.T) {
	root := taskWithChildren("version", "config", "env", "sum", "build", "deploy", "status")

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "typo verison suggests version", input: "verison", want: []string{"version"}},
		{name: "typo confg suggests config", input: "confg", want: []string{"config"}},
		{name: "typo dploy suggests deploy", input: "dploy", want: []string{"deploy"}},
		{name: "nearest first", input: "sun", want: []string{"sum", "env"}},
		{name: "typo sttus suggests status first", input: "sttus", want: []string{"status", "sum"}},
		{name: "completely different returns nothing", input: "xyz123789", want: []string{}},
		{name: "exact match is not suggested", input: "build", want: []string{}},
		{name: "empty input returns nil", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSimilarCommands(tt.input, root, 3)

			if tt.want == nil {
				require.Nil(t, got)
			} else if len(tt.want) == 0 {
				require.Empty(t, got)
			} else {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFindSimilarCommands_NilNode(t *testing.T) {
	require.Nil(t, FindSimilarCommands("deploy", nil, 3))
	require.Nil(t, FindSimilarCommands("deploy", &Task{}, 3))
}

func TestFindSimilarCommands_MaxResults(t *testing.T) {
	config := taskWithChildren("get", "set", "list")

	got := FindSimilarCommands("sett", config, 2)
	require.Equal(t, []string{"set", "get"}, got)
}
