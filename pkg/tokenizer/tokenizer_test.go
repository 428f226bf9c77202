package tokenizer

import (
	"reflect"
	"testing"

	"zipfstat/pkg/stopwords"
)

func TestTokenize_PreservesOrderAndRepeats(t *testing.T) {
	got := Tokenize("кот кот пес кот мышь пес", stopwords.NewSet())
	want := []string{"кот", "кот", "пес", "кот", "мышь", "пес"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_Lowercases(t *testing.T) {
	got := Tokenize("Кот ПЕС Word", stopwords.NewSet())
	want := []string{"кот", "пес", "word"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_PunctuationSeparates(t *testing.T) {
	got := Tokenize("слово,другое;третье...конец", stopwords.NewSet())
	want := []string{"слово", "другое", "третье", "конец"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_DropsStopwords(t *testing.T) {
	stop := stopwords.NewSet("слово", "ДРУГОЕ")
	got := Tokenize("слово другое третье", stop)
	want := []string{"третье"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_DropsPureDigits(t *testing.T) {
	got := Tokenize("глава 2024 12345 текст", stopwords.NewSet())
	want := []string{"глава", "текст"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_DropsSingleCharactersAnyScript(t *testing.T) {
	got := Tokenize("я y 7 слово", stopwords.NewSet())
	want := []string{"слово"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_DropsShortNonCyrillic(t *testing.T) {
	// 2-3 char tokens starting with a non-Cyrillic rune are technical noise.
	got := Tokenize("api sql x1 кот ёж дом", stopwords.NewSet())
	want := []string{"кот", "ёж", "дом"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_KeepsLongLatinWords(t *testing.T) {
	got := Tokenize("shader subroutine", stopwords.NewSet())
	want := []string{"shader", "subroutine"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_MixedAlphanumericSurvives(t *testing.T) {
	// Runs mixing letters and digits are not pure-digit tokens.
	got := Tokenize("модель123 word2vec", stopwords.NewSet())
	want := []string{"модель123", "word2vec"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	if got := Tokenize("", stopwords.NewSet()); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", got)
	}
	if got := Tokenize("... 1 2 3 ---", stopwords.NewSet()); len(got) != 0 {
		t.Errorf("Tokenize(noise) = %v, want empty", got)
	}
}
