package logging

// Structured field names shared by the pipeline and the CLI.
const (
	FieldError  = "error"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldStage  = "stage"
	FieldFiles  = "files"
	FieldJobs   = "workers"

	// Conversion fields.
	FieldLanguage  = "language"
	FieldFootnote  = "footnote"
	FieldRegions   = "regions"
	FieldLists     = "lists"
	FieldTemplate  = "template"
	FieldConfig    = "config"
	FieldElapsed   = "elapsed"
	FieldSucceeded = "succeeded"
	FieldFailed    = "failed"

	// Version fields.
	FieldVersion = "version"
)
