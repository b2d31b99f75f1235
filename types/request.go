package types

// ProcessDocumentOptions carries the optional form parameters of a
// process_document request. Both values are parsed and validated but do not
// currently alter prompt construction; the frontend sends them and product
// has not settled on their meaning yet.
type ProcessDocumentOptions struct {
	SummaryLength int
	QuestionCount int
}

var DefaultProcessDocumentOptions = ProcessDocumentOptions{
	SummaryLength: 35,
	QuestionCount: 10,
}
