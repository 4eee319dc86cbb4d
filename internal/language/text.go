package language

// UIText holds the fixed strings of the user interface for one language
type UIText struct {
	AppTitle        string
	URLPlaceholder  string
	Submit          string
	Processing      string
	Video           string
	SummaryHeading  string
	SummaryPending  string
	DownloadSummary string
	Flashcards      string
	ExportDeck      string
	InvalidURL      string
}

var exportTitles = map[Code]string{
	Source:  "YouTube Video Summary",
	Hindi:   "यूट्यूब वीडियो सारांश",
	Spanish: "Resumen del video de YouTube",
	French:  "Résumé de la vidéo YouTube",
}

// ExportTitle returns the localized title placed above an exported summary.
// Braille exports keep the English title.
func ExportTitle(c Code) string {
	if title, ok := exportTitles[c]; ok {
		return title
	}
	return exportTitles[Source]
}

var uiTexts = map[Code]UIText{
	Source: {
		AppTitle:        "YouTube Video Summarizer",
		URLPlaceholder:  "Enter YouTube URL",
		Submit:          "Submit",
		Processing:      "Processing...",
		Video:           "Video",
		SummaryHeading:  "Summarization of YouTube Video",
		SummaryPending:  "Your summary will appear here after processing.",
		DownloadSummary: "Download Summary",
		Flashcards:      "Generate Flashcards",
		ExportDeck:      "Export Anki Deck",
		InvalidURL:      "Invalid YouTube URL",
	},
	Hindi: {
		AppTitle:        "यूट्यूब वीडियो सारांश",
		URLPlaceholder:  "यूट्यूब यूआरएल दर्ज करें",
		Submit:          "प्रस्तुत",
		Processing:      "प्रसंस्करण...",
		Video:           "वीडियो",
		SummaryHeading:  "यूट्यूब वीडियो का सारांश",
		SummaryPending:  "प्रसंस्करण के बाद आपका सारांश यहाँ दिखाई देगा।",
		DownloadSummary: "सारांश डाउनलोड करें",
		Flashcards:      "फ्लैशकार्ड बनाएं",
		ExportDeck:      "Anki डेक निर्यात करें",
		InvalidURL:      "अमान्य यूट्यूब यूआरएल",
	},
	Spanish: {
		AppTitle:        "Resumidor de videos de YouTube",
		URLPlaceholder:  "Introduce la URL de YouTube",
		Submit:          "Enviar",
		Processing:      "Procesando...",
		Video:           "Video",
		SummaryHeading:  "Resumen del video de YouTube",
		SummaryPending:  "Tu resumen aparecerá aquí después del procesamiento.",
		DownloadSummary: "Descargar resumen",
		Flashcards:      "Generar tarjetas",
		ExportDeck:      "Exportar mazo de Anki",
		InvalidURL:      "URL de YouTube no válida",
	},
	French: {
		AppTitle:        "Résumeur de vidéos YouTube",
		URLPlaceholder:  "Saisissez l'URL YouTube",
		Submit:          "Envoyer",
		Processing:      "Traitement...",
		Video:           "Vidéo",
		SummaryHeading:  "Résumé de la vidéo YouTube",
		SummaryPending:  "Votre résumé apparaîtra ici après le traitement.",
		DownloadSummary: "Télécharger le résumé",
		Flashcards:      "Générer des cartes",
		ExportDeck:      "Exporter le paquet Anki",
		InvalidURL:      "URL YouTube invalide",
	},
}

// Text returns the interface strings for c, falling back to English
func Text(c Code) UIText {
	if t, ok := uiTexts[c]; ok {
		return t
	}
	return uiTexts[Source]
}
