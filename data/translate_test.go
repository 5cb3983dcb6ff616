package data_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/oriumgames/slate/data"
)

func TestYAMLRoundTrip(t *testing.T) {
	c := data.NewContainer()
	mustSet(t, c, "name", "lobby")
	mustSet(t, c, "world.seed", 12345)
	mustSet(t, c, "world.pvp", true)
	mustSet(t, c, "motd", []any{"welcome", "back"})

	out, err := data.MarshalYAML(c)
	if err != nil {
		t.Fatal(err)
	}

	back, err := data.UnmarshalYAML(out)
	if err != nil {
		t.Fatal(err)
	}

	if got, ok := back.GetString(data.NewQuery("name")); !ok || got != "lobby" {
		t.Errorf("name = %v, %v", got, ok)
	}
	if got, ok := back.GetInt(data.ParseQuery("world.seed")); !ok || got != 12345 {
		t.Errorf("world.seed = %v, %v", got, ok)
	}
	if got, ok := back.GetBool(data.ParseQuery("world.pvp")); !ok || !got {
		t.Errorf("world.pvp = %v, %v", got, ok)
	}
	if got, ok := back.GetStringList(data.NewQuery("motd")); !ok || !slices.Equal(got, []string{"welcome", "back"}) {
		t.Errorf("motd = %v, %v", got, ok)
	}
}

func TestYAMLPreservesKeyOrder(t *testing.T) {
	c := data.NewContainer()
	mustSet(t, c, "zeta", 1)
	mustSet(t, c, "alpha", 2)
	mustSet(t, c, "mid", 3)

	out, err := data.MarshalYAML(c)
	if err != nil {
		t.Fatal(err)
	}
	text := string(out)
	if !(strings.Index(text, "zeta") < strings.Index(text, "alpha") &&
		strings.Index(text, "alpha") < strings.Index(text, "mid")) {
		t.Errorf("marshal must keep insertion order, got:\n%s", text)
	}

	back, err := data.UnmarshalYAML(out)
	if err != nil {
		t.Fatal(err)
	}
	want := []data.Query{data.NewQuery("zeta"), data.NewQuery("alpha"), data.NewQuery("mid")}
	if got := back.Keys(false); !slices.Equal(got, want) {
		t.Errorf("Keys after round trip = %v, want %v", got, want)
	}
}

func TestUnmarshalYAMLNestedDocument(t *testing.T) {
	doc := []byte(`
server:
  port: 19132
  tags:
    - survival
    - hardcore
players:
  - name: Steve
    level: 3
`)
	c, err := data.UnmarshalYAML(doc)
	if err != nil {
		t.Fatal(err)
	}

	if got, ok := c.GetInt(data.ParseQuery("server.port")); !ok || got != 19132 {
		t.Errorf("server.port = %v, %v", got, ok)
	}
	tags, ok := c.GetStringList(data.ParseQuery("server.tags"))
	if !ok || !slices.Equal(tags, []string{"survival", "hardcore"}) {
		t.Errorf("server.tags = %v, %v", tags, ok)
	}

	// Mappings inside sequences stay plain maps.
	players, ok := c.GetMapList(data.NewQuery("players"))
	if !ok || len(players) != 1 {
		t.Fatalf("players = %v, %v", players, ok)
	}
	if players[0]["name"] != "Steve" {
		t.Errorf("players[0] = %v", players[0])
	}
}

func TestMarshalYAMLNilContainer(t *testing.T) {
	if _, err := data.MarshalYAML(nil); err == nil {
		t.Error("expected an error for a nil container")
	}
}
