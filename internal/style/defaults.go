package style

// Default returns the built-in style table. These templates use the
// citation mini-language: ##field## substitutes a field, {{ ... }} blocks
// drop entirely when any field inside is empty, and a trailing {{{sym}}}
// names the final punctuation.
func Default() *Config {
	return &Config{
		Styles: map[string]map[string]Entry{
			"APA": {
				DefaultBibType: {
					Reference: `{{##authors.format_apalike_style## }}{{(##year##). }}{{##title##. }}{{<i>##journal##</i>. }}{{##doi##}}{{{.}}}`,
					Footnote:  `{{##authors.format_intext_style##, }}{{<i>##short_title##</i>, }}{{##year##}}{{{.}}}`,
					InText:    `{{(##authors.format_intext_style##, ##year##)}}`,
				},
				"inproceedings": {
					Reference: `{{##authors.format_apalike_style## }}{{(##year##). }}{{##title##. }}{{In <i>##venue##</i>. }}{{##doi##}}{{{.}}}`,
					Footnote:  `{{##authors.format_intext_style##, }}{{<i>##short_title##</i>, }}{{##year##}}{{{.}}}`,
					InText:    `{{(##authors.format_intext_style##, ##year##)}}`,
				},
			},
			"IEEE": {
				DefaultBibType: {
					Reference: `{{##authors.format_ieeetr_style##, }}{{"##title##," }}{{<i>##journal##</i>, }}{{##year##}}{{{.}}}`,
					Footnote:  `{{##authors.format_intext_style##, }}{{"##short_title##," }}{{##year##}}{{{.}}}`,
					InText:    `{{[##key##]}}`,
				},
			},
			"Chicago": {
				DefaultBibType: {
					Reference: `{{##authors.format_alpha_style##. }}{{"##title##." }}{{<i>##journal##</i> }}{{(##year##)}}{{{.}}}`,
					Footnote:  `{{##authors.format_intext_style##, }}{{"##short_title##," }}{{##year##}}{{{.}}}`,
					InText:    `{{(##authors.format_intext_style## ##year##)}}`,
				},
			},
		},
	}
}
