package pipeline

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name      string
		generator func() GenerateFunc[int]
		check     func(items <-chan int, errc <-chan error)
	}{
		{
			name: "generates 10 numbers",
			generator: func() GenerateFunc[int] {
				i := 0
				return func() (int, error) {
					i++
					if i <= 10 {
						return i, nil
					}
					return 0, assert.AnError
				}
			},
			check: func(items <-chan int, errc <-chan error) {
				count := 0
				for range items {
					count++
				}
				assert.Equal(t, 10, count)
				assert.Equal(t, assert.AnError, <-errc)
			},
		},
		{
			name: "keeps zero values",
			generator: func() GenerateFunc[int] {
				i := 0
				return func() (int, error) {
					i++
					if i <= 3 {
						return 0, nil
					}
					return 0, io.EOF
				}
			},
			check: func(items <-chan int, errc <-chan error) {
				count := 0
				for range items {
					count++
				}
				assert.Equal(t, 3, count)
				assert.Equal(t, io.EOF, <-errc)
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.check(Generate(context.TODO(), test.generator()))
		})
	}
}

func TestGenerate_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	items, errc := Generate(ctx, func() (int, error) {
		return 1, nil
	})

	assert.Equal(t, 1, <-items)
	cancel()

	for range items {
	}
	assert.Equal(t, ErrCanceled, <-errc)
}

func TestNext(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(ctx context.Context, items <-chan string, errc <-chan error)
	}{
		{
			name:  "reads lines in order then EOF",
			input: "alice\n\nairport\n",
			check: func(ctx context.Context, items <-chan string, errc <-chan error) {
				for _, want := range []string{"alice", "", "airport"} {
					got, err := Next(ctx, items, errc)
					assert.Nil(t, err)
					assert.Equal(t, want, got)
				}
				_, err := Next(ctx, items, errc)
				assert.Equal(t, io.EOF, err)
			},
		},
		{
			name:  "empty input - EOF",
			input: "",
			check: func(ctx context.Context, items <-chan string, errc <-chan error) {
				_, err := Next(ctx, items, errc)
				assert.Equal(t, io.EOF, err)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.TODO()
			items, errc := Generate(ctx, scanLines(test.input))
			test.check(ctx, items, errc)
		})
	}
}

func TestNext_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := make(chan string)
	errc := make(chan error)
	_, err := Next(ctx, items, errc)
	assert.Equal(t, ErrCanceled, err)
}

func scanLines(input string) GenerateFunc[string] {
	scanner := bufio.NewScanner(strings.NewReader(input))
	return func() (string, error) {
		if scanner.Scan() {
			return scanner.Text(), nil
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
}
