package i18n

var defaultTexts = map[string]string{
	"Markdown":                          "Markdown",
	"WYSIWYG":                           "WYSIWYG",
	"Write":                             "Write",
	"Preview":                           "Preview",
	"Headings":                          "Headings",
	"Paragraph":                         "Paragraph",
	"Bold":                              "Bold",
	"Italic":                            "Italic",
	"Strike":                            "Strike",
	"Code":                              "Inline code",
	"Line":                              "Line",
	"Blockquote":                        "Blockquote",
	"Unordered list":                    "Unordered list",
	"Ordered list":                      "Ordered list",
	"Task":                              "Task",
	"Indent":                            "Indent",
	"Outdent":                           "Outdent",
	"Insert link":                       "Insert link",
	"Insert CodeBlock":                  "Insert codeBlock",
	"Insert table":                      "Insert table",
	"Insert image":                      "Insert image",
	"Heading":                           "Heading",
	"Image URL":                         "Image URL",
	"Select image file":                 "Select image file",
	"Choose a file":                     "Choose a file",
	"No file":                           "No file",
	"Description":                       "Description",
	"OK":                                "OK",
	"More":                              "More",
	"Cancel":                            "Cancel",
	"File":                              "File",
	"URL":                               "URL",
	"Link text":                         "Link text",
	"Add row":                           "Add row",
	"Add col":                           "Add col",
	"Remove row":                        "Remove row",
	"Remove col":                        "Remove col",
	"Align left":                        "Align left",
	"Align center":                      "Align center",
	"Align right":                       "Align right",
	"Remove table":                      "Remove table",
	"Would you like to paste as table?": "Would you like to paste as table?",
	"Text color":                        "Text color",
	"Auto scroll enabled":               "Auto scroll enabled",
	"Auto scroll disabled":              "Auto scroll disabled",
	"Choose language":                   "Choose language",
}
