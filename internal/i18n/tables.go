package i18n

var indonesian = map[Key]string{
	KeyTitle:              "🔍 Penganalisis Ulasan Produk",
	KeySubtitle:           "Analisis sentimen dan ambil poin penting dari ulasan produk",
	KeySubmitHeading:      "Kirim Ulasan",
	KeyProductLabel:       "Nama produk",
	KeyProductPlaceholder: "Nama produk (opsional)",
	KeyReviewLabel:        "Ulasan",
	KeyReviewPlaceholder:  "Tulis ulasan produk di sini... (minimal 10 karakter)",
	KeyAnalyzeButton:      "Analisis Ulasan",
	KeyAnalyzing:          "Menganalisis...",
	KeyErrorPrefix:        "Kesalahan",
	KeyErrTooShort:        "Ulasan harus terdiri dari minimal 10 karakter",
	KeyErrGeneric:         "Terjadi kesalahan saat analisis",
	KeyResultHeading:      "Hasil Analisis",
	KeySentimentHeading:   "Analisis Sentimen",
	KeyConfidence:         "Tingkat keyakinan",
	KeyKeyPoints:          "Poin Penting",
	KeyReviewText:         "Teks Ulasan",
	KeyProduct:            "Produk",
	KeyHistoryHeading:     "Ulasan Sebelumnya",
	KeyHistoryLoading:     "Memuat ulasan...",
	KeyHistoryEmpty:       "Belum ada ulasan. Jadilah yang pertama mengirim!",
	KeySentimentPositive:  "positif",
	KeySentimentNegative:  "negatif",
	KeySentimentNeutral:   "netral",
	KeyThemeLight:         "terang",
	KeyThemeDark:          "gelap",
	KeyLanguageName:       "Bahasa Indonesia",
	KeyHelp:               "tab pindah kolom • ctrl+s kirim • ctrl+t tema • ctrl+l bahasa • ctrl+r muat ulang • esc keluar",
}

var english = map[Key]string{
	KeyTitle:              "🔍 Product Review Analyzer",
	KeySubtitle:           "Analyze sentiment and extract key insights from product reviews",
	KeySubmitHeading:      "Submit a Review",
	KeyProductLabel:       "Product name",
	KeyProductPlaceholder: "Product name (optional)",
	KeyReviewLabel:        "Review",
	KeyReviewPlaceholder:  "Enter your product review here... (minimum 10 characters)",
	KeyAnalyzeButton:      "Analyze Review",
	KeyAnalyzing:          "Analyzing...",
	KeyErrorPrefix:        "Error",
	KeyErrTooShort:        "Review must be at least 10 characters long",
	KeyErrGeneric:         "An error occurred during analysis",
	KeyResultHeading:      "Analysis Result",
	KeySentimentHeading:   "Sentiment Analysis",
	KeyConfidence:         "Confidence",
	KeyKeyPoints:          "Key Points",
	KeyReviewText:         "Review Text",
	KeyProduct:            "Product",
	KeyHistoryHeading:     "Previous Reviews",
	KeyHistoryLoading:     "Loading reviews...",
	KeyHistoryEmpty:       "No reviews yet. Be the first to submit one!",
	KeySentimentPositive:  "positive",
	KeySentimentNegative:  "negative",
	KeySentimentNeutral:   "neutral",
	KeyThemeLight:         "light",
	KeyThemeDark:          "dark",
	KeyLanguageName:       "English",
	KeyHelp:               "tab switch field • ctrl+s submit • ctrl+t theme • ctrl+l language • ctrl+r reload • esc quit",
}
