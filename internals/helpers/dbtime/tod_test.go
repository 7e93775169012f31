package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTodParse(t *testing.T) {
	t.Run("con segundos", func(t *testing.T) {
		tod, err := Parse("08:15:30")
		require.NoError(t, err)
		require.Equal(t, "08:15:30", tod.Format("15:04:05"))
	})

	t.Run("sin segundos completa :00", func(t *testing.T) {
		tod, err := Parse("08:15")
		require.NoError(t, err)
		require.Equal(t, "08:15:00", tod.Format("15:04:05"))
	})

	t.Run("inválido", func(t *testing.T) {
		_, err := Parse("25:99")
		require.Error(t, err)
	})
}

func TestTodScan(t *testing.T) {
	t.Run("desde string", func(t *testing.T) {
		var tod Tod
		require.NoError(t, tod.Scan("14:30:00"))
		require.Equal(t, "14:30:00", tod.Format("15:04:05"))
	})

	t.Run("desde time.Time descarta la fecha", func(t *testing.T) {
		var tod Tod
		require.NoError(t, tod.Scan(time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)))
		require.Equal(t, "14:30:00", tod.Format("15:04:05"))
	})

	t.Run("nil deja el cero", func(t *testing.T) {
		var tod Tod
		require.NoError(t, tod.Scan(nil))
		require.True(t, tod.IsZero())
	})
}

func TestTodValue(t *testing.T) {
	tod, err := Parse("07:05")
	require.NoError(t, err)

	v, err := tod.Value()
	require.NoError(t, err)
	require.Equal(t, "07:05:00", v)
}

func TestTodAddMinutesYAfter(t *testing.T) {
	inicio, err := Parse("08:00")
	require.NoError(t, err)
	limite := inicio.AddMinutes(15)

	enLimite, err := Parse("08:15")
	require.NoError(t, err)
	pasado, err := Parse("08:16")
	require.NoError(t, err)

	// el límite exacto no es "después"
	require.False(t, enLimite.After(limite))
	require.True(t, pasado.After(limite))
}

func TestTodJSON(t *testing.T) {
	tod, err := Parse("16:45")
	require.NoError(t, err)

	b, err := json.Marshal(tod)
	require.NoError(t, err)
	require.Equal(t, `"16:45:00"`, string(b))

	var vuelta Tod
	require.NoError(t, json.Unmarshal(b, &vuelta))
	require.Equal(t, tod.Format("15:04:05"), vuelta.Format("15:04:05"))
}

func TestFechas(t *testing.T) {
	f, err := ParseFecha("2025-03-10")
	require.NoError(t, err)
	require.Equal(t, "2025-03-10", FormatFecha(f))

	_, err = ParseFecha("10/03/2025")
	require.Error(t, err)

	medioDia := time.Date(2025, 3, 10, 12, 30, 0, 0, time.Local)
	require.Equal(t, "2025-03-10", FormatFecha(FechaDe(medioDia)))
}
