package game

import (
	"testing"

	"golang.org/x/text/language"
)

func TestLocalizerEnglish(t *testing.T) {
	l := NewLocalizer("en")
	if got := l.Sprintf(msgScore, 12345); got != "SCORE 12,345" {
		t.Fatalf("score: got=%q", got)
	}
	if got := l.Sprintf(msgSector, 3, 5); got != "SECTOR 3/5" {
		t.Fatalf("sector: got=%q", got)
	}
}

func TestLocalizerTraditionalChinese(t *testing.T) {
	for _, lang := range []string{"zh-TW", "tw", "zh-Hant"} {
		l := NewLocalizer(lang)
		if l.Tag() != language.TraditionalChinese {
			t.Fatalf("%s: tag=%v", lang, l.Tag())
		}
		if got := l.Sprintf(msgSector, 2, 5); got != "區域 2/5" {
			t.Fatalf("%s: sector=%q", lang, got)
		}
	}
}

func TestLocalizerFallsBackToEnglish(t *testing.T) {
	l := NewLocalizer("xx-unknown")
	if l.Tag() != language.English {
		t.Fatalf("tag: got=%v want=en", l.Tag())
	}
}

func TestLocalizerCycles(t *testing.T) {
	l := NewLocalizer("en")
	if l.Next().Tag() != language.TraditionalChinese {
		t.Fatalf("next after en: %v", l.Next().Tag())
	}
	if l.Next().Next().Tag() != language.English {
		t.Fatalf("cycle did not wrap")
	}
}

func TestEveryMessageTranslated(t *testing.T) {
	keys := []string{
		msgTitle, msgStart, msgHowTo, msgScore, msgTotalScore, msgSector, msgPrizeWheel,
		msgCombo, msgBonus, msgSectorClear, msgAccessPrize, msgGameOver, msgReboot,
		msgRewardWon, msgNewCycle, msgMuted, msgDemo,
	}
	keys = append(keys, quotes...)
	for _, k := range keys {
		if _, ok := traditionalChinese[k]; !ok {
			t.Fatalf("missing zh-TW entry for %q", k)
		}
	}
}
