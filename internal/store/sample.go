package store

import "github.com/vocadeck/vocadeck-api/internal/domain"

// SampleEntries returns the built-in GRE sample set used for offline and
// demo operation. A fresh slice is returned on every call so callers may
// hold references without sharing state.
func SampleEntries() []domain.Entry {
	return []domain.Entry{
		{
			Word:         "aberrant",
			Explanation:  "偏離常軌的；異常的",
			RelatedWords: "deviant, abnormal, atypical",
			POS:          "adj.",
			Usage:        "用來形容行為或現象偏離正常標準",
			Sentence:     "His aberrant behavior worried his friends.",
		},
		{
			Word:         "abate",
			Explanation:  "減少；減輕",
			RelatedWords: "diminish, subside, decrease",
			POS:          "v.",
			Usage:        "通常指強度、數量或程度的減少",
			Sentence:     "The storm began to abate after midnight.",
		},
		{
			Word:         "abscond",
			Explanation:  "潛逃；逃匿",
			RelatedWords: "flee, escape, run away",
			POS:          "v.",
			Usage:        "秘密地或突然地離開以避免後果",
			Sentence:     "The thief absconded with the jewelry.",
		},
		{
			Word:         "abstemious",
			Explanation:  "節制的；節儉的",
			RelatedWords: "temperate, moderate, restrained",
			POS:          "adj.",
			Usage:        "在飲食或享樂方面自我克制",
			Sentence:     "Despite his wealth, he lived an abstemious lifestyle.",
		},
		{
			Word:         "admonish",
			Explanation:  "告誡；溫和地責備",
			RelatedWords: "warn, caution, reprove",
			POS:          "v.",
			Usage:        "以溫和但嚴肅的方式提醒或警告",
			Sentence:     "The teacher admonished the students for talking during the exam.",
		},
	}
}
