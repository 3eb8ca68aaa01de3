package glang

import (
	"encoding/json"
	"errors"
	"fmt"

	"slicepuzzle/src/ui/gui/gbase/gassets"
)

type LangType int

const (
	EN LangType = iota
	RU
	ZZ
)

var ErrUnsupportedLang = errors.New("unsupported lang")

func LangTypeByString(lang string) LangType {
	switch lang {
	case "en":
		return EN
	case "ru":
		return RU
	default:
	}
	return ZZ
}

func (t LangType) String() string {
	switch t {
	case EN:
		return "en"
	case RU:
		return "ru"
	default:
	}
	return ""
}

type GUILangWorker struct {
	workdir string
	lang    LangType
	dict    map[string]string
}

func NewGUILangWorker(workdir string, lang string) (*GUILangWorker, error) {
	lw := &GUILangWorker{
		dict:    make(map[string]string),
		workdir: workdir,
	}
	t := LangTypeByString(lang)
	if t == ZZ {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLang, lang)
	}
	if err := lw.SetLang(t); err != nil {
		return nil, err
	}
	return lw, nil
}

func (lw *GUILangWorker) GetLang() LangType {
	return lw.lang
}

// SetLang swaps the dictionary; the previous one stays if loading fails.
func (lw *GUILangWorker) SetLang(l LangType) error {
	if l == ZZ {
		return ErrUnsupportedLang
	}
	data, err := gassets.ReadAsset(lw.workdir + "/" + l.String() + ".json")
	if err != nil {
		return err
	}
	dict := make(map[string]string)
	if err := json.Unmarshal(data, &dict); err != nil {
		return fmt.Errorf("error decode lang %s: %w", l, err)
	}
	lw.lang = l
	lw.dict = dict
	return nil
}

// T returns the key itself when there is no translation.
func (lw *GUILangWorker) T(key string) string {
	if v, ok := lw.dict[key]; ok {
		return v
	}
	return key
}
