package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueueEmpty(t *testing.T) {
	var q Queue
	require.Equal(t, 0, q.Len())
	require.Equal(t, byte(0), q.Read())
	require.Equal(t, 0, q.Len())
}

func TestQueueOrder(t *testing.T) {
	var q Queue
	for _, v := range []byte{1, 2, 3} {
		require.False(t, q.Push(v))
	}
	require.Equal(t, 3, q.Len())
	require.Equal(t, byte(1), q.Read())
	q.Push(4)
	require.Equal(t, []byte{2, 3, 4}, drainQueue(&q))
	require.Equal(t, 0, q.Len())
}

func drainQueue(q *Queue) (out []byte) {
	for q.Len() > 0 {
		out = append(out, q.Read())
	}
	return
}

func TestQueueOverflow(t *testing.T) {
	testCases := []struct {
		name   string
		pushes int
		expect []byte
	}{
		{"seven", 7, []byte{1, 2, 3, 4, 5, 6, 7}},
		{"eight", 8, []byte{2, 3, 4, 5, 6, 7, 8}},
		{"nine", 9, []byte{3, 4, 5, 6, 7, 8, 9}},
		{"twenty", 20, []byte{14, 15, 16, 17, 18, 19, 20}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var q Queue
			dropped := 0
			for i := 1; i <= tc.pushes; i++ {
				if q.Push(byte(i)) {
					dropped++
				}
			}
			require.Equal(t, QueueCapacity, q.Len())
			require.Equal(t, tc.pushes-QueueCapacity, dropped)
			require.Equal(t, tc.expect, drainQueue(&q))
			require.Equal(t, byte(0), q.Read())
		})
	}
}

func TestQueueReset(t *testing.T) {
	var q Queue
	q.Push(1)
	q.Push(2)
	q.Reset()
	require.Equal(t, 0, q.Len())
	require.Equal(t, byte(0), q.Read())
}
