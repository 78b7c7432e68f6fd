package app

// NormalizeLanguageExported exposes normalizeLanguage for white-box tests.
var NormalizeLanguageExported = normalizeLanguage
