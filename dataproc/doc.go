// Package dataproc converts between serialized markup and the editor's
// block model. The classic editor installs the HTML processor by default;
// hosts can swap in PlainText or their own Processor implementation.
package dataproc
