package gassets

import (
	"encoding/json"
	"testing"
)

func TestEmbeddedDictionaries(t *testing.T) {
	var en, ru map[string]string
	for name, dst := range map[string]*map[string]string{"en": &en, "ru": &ru} {
		data, err := ReadAsset("assets/lang/" + name + ".json")
		if err != nil {
			t.Fatalf("ReadAsset %s: %v", name, err)
		}
		if err := json.Unmarshal(data, dst); err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
	}
	for k := range en {
		if _, ok := ru[k]; !ok {
			t.Fatalf("key %q missing from ru.json", k)
		}
	}
	if len(en) != len(ru) {
		t.Fatalf("en has %d keys, ru has %d", len(en), len(ru))
	}
}
