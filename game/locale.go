package game

import (
	"log"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HUD message keys. The English text doubles as the key.
const (
	msgTitle        = "NEON DARTS"
	msgStart        = "PRESS ENTER TO INITIALIZE CHALLENGE"
	msgHowTo        = "LAUNCH WITH [SPACE] OR [TAP]"
	msgScore        = "SCORE %d"
	msgTotalScore   = "ACCUMULATED SCORE %d"
	msgSector       = "SECTOR %d/%d"
	msgPrizeWheel   = "REWARD EXTRACTION"
	msgCombo        = "COMBO x%d"
	msgBonus        = "+%d BONUS"
	msgSectorClear  = "SECTOR CLEAR!"
	msgAccessPrize  = "ENTER: ACCESS PRIZE CORE"
	msgGameOver     = "SYSTEM FAILURE"
	msgReboot       = "ENTER: REBOOT SYSTEM"
	msgRewardWon    = "REWARD ACQUIRED"
	msgNewCycle     = "ENTER: NEW CYCLE"
	msgMuted        = "MUTED"
	msgDemo         = "DEMO"
	msgQuoteSteady  = "A steady hand finds the center of the storm."
	msgQuoteVision  = "The dart follows the vision, not just the hand."
	msgQuoteSilence = "True focus is silence amidst the neon noise."
	msgQuoteMarket  = "In the heart of the night market, only the sharpest survive."
)

// quotes rotate on the menu screen
var quotes = []string{msgQuoteSteady, msgQuoteVision, msgQuoteSilence, msgQuoteMarket}

// traditionalChinese holds the zh-TW catalog; English uses the keys as-is
var traditionalChinese = map[string]string{
	msgTitle:        "霓虹飛鏢",
	msgStart:        "按 ENTER 啟動挑戰",
	msgHowTo:        "使用 [空格] 或 [點擊] 觸發發射",
	msgScore:        "分數 %d",
	msgTotalScore:   "累積總分 %d",
	msgSector:       "區域 %d/%d",
	msgPrizeWheel:   "獎勵提取",
	msgCombo:        "連擊 x%d",
	msgBonus:        "+%d 獎勵",
	msgSectorClear:  "區域清除！",
	msgAccessPrize:  "ENTER：進入獎勵核心",
	msgGameOver:     "系統故障",
	msgReboot:       "ENTER：重啟系統",
	msgRewardWon:    "獲得獎勵",
	msgNewCycle:     "ENTER：新循環",
	msgMuted:        "靜音",
	msgDemo:         "示範",
	msgQuoteSteady:  "沉穩的手能找到風暴的中心。",
	msgQuoteVision:  "飛鏢跟隨的是遠見，而不僅僅是手。",
	msgQuoteSilence: "真正的專注是霓虹噪音中的沉默。",
	msgQuoteMarket:  "在夜市的心臟地帶，只有最敏銳的人才能生存。",
}

// supportedLanguages in cycling order
var supportedLanguages = []language.Tag{language.English, language.TraditionalChinese}

var languageMatcher = language.NewMatcher(supportedLanguages)

func init() {
	for key, msg := range traditionalChinese {
		if err := message.SetString(language.TraditionalChinese, key, msg); err != nil {
			log.Printf("Locale entry %q skipped: %v", key, err)
		}
		if err := message.SetString(language.English, key, key); err != nil {
			log.Printf("Locale entry %q skipped: %v", key, err)
		}
	}
}

// Localizer formats HUD strings for one language
type Localizer struct {
	index   int
	printer *message.Printer
}

// NewLocalizer picks the closest supported language for lang. "tw" is accepted as zh-TW.
func NewLocalizer(lang string) *Localizer {
	lang = strings.TrimSpace(lang)
	if strings.EqualFold(lang, "tw") {
		lang = "zh-TW"
	}
	_, index, _ := languageMatcher.Match(language.Make(lang))
	return newLocalizerAt(index)
}

func newLocalizerAt(index int) *Localizer {
	return &Localizer{
		index:   index,
		printer: message.NewPrinter(supportedLanguages[index]),
	}
}

// Tag returns the active language
func (l *Localizer) Tag() language.Tag {
	return supportedLanguages[l.index]
}

// Next returns a localizer for the following supported language
func (l *Localizer) Next() *Localizer {
	return newLocalizerAt((l.index + 1) % len(supportedLanguages))
}

// Sprintf formats a catalog message; numbers get locale grouping
func (l *Localizer) Sprintf(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}
