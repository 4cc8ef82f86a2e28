package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatal(err)
	}
	for _, name := range []FontName{HUD, Small, Float} {
		if name.Get() == nil {
			t.Errorf("%s: nil face", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	FontName("missing").Get()
}
