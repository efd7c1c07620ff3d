package target

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/uri"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/spell-warden/internal/core"
	"github.com/sevigo/spell-warden/internal/core/mocks"
)

func sampleTargets() []ConfigTarget {
	return []ConfigTarget{
		NewVSCodeTarget("User Settings", ScopeUser),
		NewCSpellTarget("cspell.json", uri.File("/path/to/workspace/cspell.json"), ScopeWorkspace),
		NewDictionaryTarget("Workspace Dictionary", uri.File("/path/to/workspace/words.txt"), ScopeWorkspace),
		NewVSCodeTarget("Folder Settings", ScopeFolder),
		NewDictionaryTarget("Global Dictionary", uri.File("/home/user/words.txt"), ScopeUser),
		NewCSpellTarget("client cspell.json", uri.File("/path/to/workspace/client/cspell.json"), ScopeFolder),
	}
}

func namesOf(targets []ConfigTarget) []string {
	out := make([]string, len(targets))
	for i, t := range targets {
		out[i] = t.Name
	}
	return out
}

func TestNegate(t *testing.T) {
	tests := []struct {
		name string
		in   Pattern
		want Pattern
	}{
		{name: "all negates to none", in: MatchAll, want: MatchNone},
		{name: "none negates to all", in: MatchNone, want: MatchAll},
		{
			name: "partial pattern is complemented per axis",
			in:   Pattern{Kind: MatchKindCSpell, Scope: MatchScopeUser},
			want: Pattern{
				Kind:  MatchKind{Dictionary: true, VSCode: true},
				Scope: MatchScopeAllButUser,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Negate(tt.in))
		})
	}
}

func TestNegate_Involution(t *testing.T) {
	kinds := []MatchKind{MatchKindAll, MatchKindNone, MatchKindCSpell, MatchKindVSCode, MatchKindDictionary}
	scopes := []MatchScope{MatchScopeAll, MatchScopeNone, MatchScopeUser, MatchScopeWorkspace, MatchScopeFolder, MatchScopeAllButUser}

	for _, k := range kinds {
		for _, s := range scopes {
			p := Pattern{Kind: k, Scope: s}
			assert.Equal(t, p, Negate(Negate(p)))
		}
	}
}

func TestPattern_OrAnd(t *testing.T) {
	p := Pattern{Kind: MatchKindCSpell, Scope: MatchScopeUser}
	q := Pattern{Kind: MatchKindDictionary, Scope: MatchScopeUser.Or(MatchScopeFolder)}

	assert.Equal(t, Pattern{
		Kind:  MatchKind{Dictionary: true, CSpell: true},
		Scope: MatchScope{User: true, Folder: true},
	}, p.Or(q))
	assert.Equal(t, Pattern{Kind: MatchKindNone, Scope: MatchScopeUser}, p.And(q))
	assert.Equal(t, MatchAll, p.Or(Negate(p)))
	assert.Equal(t, MatchNone, p.And(Negate(p)))
}

func TestMatches(t *testing.T) {
	dict := NewDictionaryTarget("d", uri.File("/w/d.txt"), ScopeWorkspace)

	assert.True(t, Matches(dict, MatchAll))
	assert.False(t, Matches(dict, MatchNone))
	assert.True(t, Matches(dict, Pattern{Kind: MatchKindDictionary, Scope: MatchScopeAllButUser}))
	assert.False(t, Matches(dict, Pattern{Kind: MatchKindDictionary, Scope: MatchScopeUser}))
	assert.False(t, Matches(dict, Pattern{Kind: MatchKindCSpell, Scope: MatchScopeAll}))

	unknown := NewCSpellTarget("c", uri.File("/tmp/cspell.json"), ScopeUnknown)
	assert.True(t, Matches(unknown, Pattern{Kind: MatchKindCSpell, Scope: MatchScopeAllButUser}))
	assert.False(t, Matches(unknown, Pattern{Kind: MatchKindCSpell, Scope: MatchScopeWorkspace.Or(MatchScopeFolder)}))
}

func TestFilter(t *testing.T) {
	got := Filter(sampleTargets(), MatchesPattern(Pattern{Kind: MatchKindAll, Scope: MatchScopeWorkspace}))
	assert.Equal(t, []string{"cspell.json", "Workspace Dictionary"}, namesOf(got))

	got = Filter(sampleTargets(), func(t ConfigTarget) bool { return t.Kind == KindVSCode })
	assert.Equal(t, []string{"User Settings", "Folder Settings"}, namesOf(got))

	assert.Empty(t, Filter(nil, MatchesPattern(MatchAll)))
}

func TestFindBestMatching(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		want    []string
	}{
		{
			name:    "dictionaries outrank everything",
			pattern: MatchAll,
			want:    []string{"Workspace Dictionary", "Global Dictionary"},
		},
		{
			name:    "cspell files outrank editor settings",
			pattern: Pattern{Kind: MatchKindCSpell.Or(MatchKindVSCode), Scope: MatchScopeAll},
			want:    []string{"cspell.json", "client cspell.json"},
		},
		{
			name:    "scope narrows before ranking",
			pattern: Pattern{Kind: MatchKindAll, Scope: MatchScopeFolder},
			want:    []string{"client cspell.json"},
		},
		{
			name:    "only editor settings",
			pattern: Pattern{Kind: MatchKindVSCode, Scope: MatchScopeAll},
			want:    []string{"User Settings", "Folder Settings"},
		},
		{
			name:    "nothing matches",
			pattern: MatchNone,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, namesOf(FindBestMatching(tt.pattern, sampleTargets())))
		})
	}
}

func TestPickBestMatch(t *testing.T) {
	ctx := context.Background()
	pattern := Pattern{Kind: MatchKindAll, Scope: MatchScopeAllButUser}

	t.Run("selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		picker := mocks.NewMockPicker(ctrl)

		picker.EXPECT().
			Pick(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, choices []core.Choice) (int, bool, error) {
				labels := make([]string, len(choices))
				for i, c := range choices {
					labels[i] = c.Label
				}
				assert.Equal(t, []string{"Workspace Dictionary", "cspell.json", "Folder Settings", "client cspell.json"}, labels)
				return 2, true, nil
			})

		got, err := PickBestMatch(ctx, pattern, sampleTargets(), picker)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Folder Settings", got.Name)
		assert.Equal(t, SettingWorkspaceFolder, got.Setting)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		picker := mocks.NewMockPicker(ctrl)
		picker.EXPECT().Pick(gomock.Any(), gomock.Any(), gomock.Len(4)).Return(0, false, nil)

		got, err := PickBestMatch(ctx, pattern, sampleTargets(), picker)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("no candidates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		picker := mocks.NewMockPicker(ctrl)

		got, err := PickBestMatch(ctx, Pattern{Kind: MatchKindDictionary, Scope: MatchScopeFolder}, sampleTargets(), picker)
		require.ErrorIs(t, err, ErrNoMatch)
		assert.EqualError(t, err, "No matching configuration found.")
		assert.Nil(t, got)
	})

	t.Run("picker error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		picker := mocks.NewMockPicker(ctrl)
		boom := errors.New("terminal closed")
		picker.EXPECT().Pick(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, false, boom)

		_, err := PickBestMatch(ctx, pattern, sampleTargets(), picker)
		require.ErrorIs(t, err, boom)
	})
}

func TestParseMatchLists(t *testing.T) {
	k, err := ParseMatchKind("dictionary, cspell")
	require.NoError(t, err)
	assert.Equal(t, MatchKind{Dictionary: true, CSpell: true}, k)

	k, err = ParseMatchKind("all")
	require.NoError(t, err)
	assert.Equal(t, MatchKindAll, k)

	_, err = ParseMatchKind("json")
	assert.EqualError(t, err, `parse kind list: unknown target kind "json"`)

	s, err := ParseMatchScope("all-but-user")
	require.NoError(t, err)
	assert.Equal(t, MatchScopeAllButUser, s)

	s, err = ParseMatchScope("User,FOLDER")
	require.NoError(t, err)
	assert.Equal(t, MatchScope{User: true, Folder: true}, s)

	_, err = ParseMatchScope("global")
	assert.EqualError(t, err, `parse scope list: unknown target scope "global"`)
}

func TestNewVSCodeTarget(t *testing.T) {
	assert.Equal(t, SettingGlobal, NewVSCodeTarget("u", ScopeUser).Setting)
	assert.Equal(t, SettingWorkspace, NewVSCodeTarget("w", ScopeWorkspace).Setting)
	assert.Equal(t, SettingTarget(0), NewVSCodeTarget("x", ScopeUnknown).Setting)
	assert.Equal(t, "user settings (global)", NewVSCodeTarget("u", ScopeUser).Describe())
}
