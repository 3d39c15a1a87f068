package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/daily-horoscope/internal/domain/horoscope"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dateFlag, timezoneFlag, jsonOutput, signFlag = "", "UTC", false, ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTodayCommandJSON(t *testing.T) {
	out, err := executeCommand(t, "today", "--sign", "koc", "--date", "2024-01-01", "--json")
	require.NoError(t, err)

	var rec horoscope.Record
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	require.Equal(t, "koc", rec.Sign)
	require.Equal(t, 13, rec.Love)
	require.Equal(t, 88, rec.Money)
	require.Equal(t, 35, rec.Health)
}

func TestTodayCommandText(t *testing.T) {
	out, err := executeCommand(t, "today", "-s", "oglak", "--date", "2024-01-01")
	require.NoError(t, err)
	require.Contains(t, out, "oglak - 2024-01-01")
	require.Contains(t, out, "Kariyer alanında küçük ama önemli bir adım atabilirsin. sağlık")
	require.Contains(t, out, "love: 98%")
}

func TestTodayCommandUnknownSign(t *testing.T) {
	_, err := executeCommand(t, "today", "--sign", "nope", "--date", "2024-01-01")
	require.ErrorIs(t, err, horoscope.ErrInvalidKey)
}

func TestAllCommandJSON(t *testing.T) {
	out, err := executeCommand(t, "all", "--date", "2024-01-01", "--json")
	require.NoError(t, err)

	var records []horoscope.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 12)
	require.Equal(t, "balik", records[11].Sign)
}

func TestSignsCommand(t *testing.T) {
	out, err := executeCommand(t, "signs")
	require.NoError(t, err)
	require.Equal(t, horoscope.Signs(), strings.Fields(out))
}
