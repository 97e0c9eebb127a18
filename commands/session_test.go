package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephlewis42/posh/core/interpreter"
)

func TestCdPwd(t *testing.T) {
	goldenTestSuite{
		"navigate": {Line: "mkdir -p a/b; cd a/b; pwd; cd ..; pwd; cd -; pwd; cd; pwd"},
		"missing":  {Line: "cd nope"},
		"file":     {Files: []string{"a.txt"}, Line: "cd a.txt"},
	}.Run(t)

	s := newTestShell(t)
	assertUsageError(t, s.InterpretCommand("cd a b"))
	assertUsageError(t, s.InterpretCommand("cd -"))
}

func TestSetUnset(t *testing.T) {
	goldenTestSuite{
		"list": {Setup: []string{"set B two", "set A", "cd /data"}, Line: "set"},
	}.Run(t)

	s := newTestShell(t)
	assert.NoError(t, s.InterpretCommand("set NAME value"))
	assert.Equal(t, "value", s.Variables["NAME"])

	assert.NoError(t, s.InterpretCommand("unset NAME OTHER"))
	assert.NotContains(t, s.Variables, "NAME")

	assertUsageError(t, s.InterpretCommand("set 1abc"))
	assertUsageError(t, s.InterpretCommand("set A B C"))
}

func TestAlias(t *testing.T) {
	goldenTestSuite{
		"list":    {Setup: []string{"alias ll 'ls -a'", "alias la=ls"}, Line: "alias"},
		"single":  {Setup: []string{"alias la=ls"}, Line: "alias la"},
		"unknown": {Line: "alias nope"},
		"use":     {Files: []string{".hidden"}, Setup: []string{"alias la ls"}, Line: "la -a"},
	}.Run(t)

	s := newTestShell(t)
	assert.NoError(t, s.InterpretCommand("alias p pwd"))
	assert.NoError(t, s.InterpretCommand("p"))

	assert.NoError(t, s.InterpretCommand("unalias p"))
	var unknown *interpreter.UnknownCommandError
	assert.True(t, errors.As(s.InterpretCommand("p"), &unknown))
	assert.Error(t, s.InterpretCommand("unalias p"))

	assertUsageError(t, s.InterpretCommand("alias =ls"))
	assertUsageError(t, s.InterpretCommand("alias a b c"))
}

func TestHistory(t *testing.T) {
	goldenTestSuite{
		"list": {Setup: []string{"echo one", "echo two"}, Line: "history"},
	}.Run(t)

	t.Run("clear", func(t *testing.T) {
		s := newTestShell(t)
		s.RunLine("echo one")
		assert.NoError(t, s.InterpretCommand("history -c"))

		lines, err := s.History.Lines()
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("disabled", func(t *testing.T) {
		s := newTestShell(t)
		s.History = nil
		assert.ErrorIs(t, s.InterpretCommand("history"), errNoHistory)
	})
}

func TestConfig(t *testing.T) {
	goldenTestSuite{
		"show":        {Line: "config"},
		"aliases":     {Setup: []string{"alias ll ls"}, Line: "config show"},
		"get":         {Line: "config get colours.errors"},
		"set_invalid": {Line: "config set shortened_path_length 0"},
	}.Run(t)

	t.Run("save and reload", func(t *testing.T) {
		s := newTestShell(t)
		assert.NoError(t, s.InterpretCommand("config set show_time false; alias ll ls; config save"))

		s.Config.ShowTime = true
		assert.NoError(t, s.InterpretCommand("config reload"))
		assert.False(t, s.Config.ShowTime)
		assert.Equal(t, map[string]string{"ll": "ls"}, s.Config.Aliases)
	})

	t.Run("reload discards changes", func(t *testing.T) {
		s := newTestShell(t)
		assert.NoError(t, s.InterpretCommand("config set colours.errors RED; alias ll ls; config reload"))

		var unknown *interpreter.UnknownCommandError
		assert.True(t, errors.As(s.InterpretCommand("ll"), &unknown))
	})

	t.Run("usage", func(t *testing.T) {
		s := newTestShell(t)
		assertUsageError(t, s.InterpretCommand("config frobnicate"))
		assertUsageError(t, s.InterpretCommand("config set show_time"))
		assertUsageError(t, s.InterpretCommand("config show extra"))
		assert.Error(t, s.InterpretCommand("config get nope"))
	})
}

func TestHelp(t *testing.T) {
	goldenTestSuite{
		"list":    {Line: "help"},
		"aliases": {Setup: []string{"alias ll ls", "alias la ls"}, Line: "help"},
		"unknown": {Line: "help nope"},
	}.Run(t)

	s := newTestShell(t)
	assert.NoError(t, s.InterpretCommand("alias lsa ls; help lsa"))
	assert.Contains(t, s.out.String(), "usage: ls [OPTION]... [PATH]...")
}

func TestExit(t *testing.T) {
	s := newTestShell(t)

	assert.NoError(t, s.InterpretCommand("exit"))
	assert.True(t, s.Quit)
}
