package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testObj struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

func TestJwtEngine(t *testing.T) {
	engine := NewTokenEngine("secret")

	token, err := engine.Generate(time.Minute, testObj{ID: "user1", Name: "foo"})
	require.NoError(t, err)

	var obj testObj
	require.NoError(t, engine.Verify(token, &obj))
	require.Equal(t, testObj{ID: "user1", Name: "foo"}, obj)
}

func TestJwtEngineExpired(t *testing.T) {
	engine := NewTokenEngine("secret")

	token, err := engine.Generate(-time.Minute, testObj{ID: "user1"})
	require.NoError(t, err)

	var obj testObj
	require.Error(t, engine.Verify(token, &obj))
}

func TestJwtEngineWrongSecret(t *testing.T) {
	engine := NewTokenEngine("secret")
	another := NewTokenEngine("another-secret")

	token, err := engine.Generate(time.Minute, testObj{ID: "user1"})
	require.NoError(t, err)

	var obj testObj
	require.Error(t, another.Verify(token, &obj))
}
