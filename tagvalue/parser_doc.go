package tagvalue

func (p *Parser) docVersion(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgDocVersionValueType, tag.Line)
		return
	}
	if err := p.builder.SetDocVersion(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *CardinalityError:
			p.moreThanOne("SPDXVersion", tag.Line)
		default:
			p.logf(msgDocVersionValue, v.Value, tag.Line)
		}
	}
}

func (p *Parser) docLicense(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgDocLicenseValueType, tag.Line)
		return
	}
	if err := p.builder.SetDocDataLicense(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *CardinalityError:
			p.moreThanOne("DataLicense", tag.Line)
		default:
			p.logf(msgDocLicenseValue, v.Value, v.Line)
		}
	}
}

func (p *Parser) docName(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgDocNameValue, tag.Line)
		return
	}
	if err := p.builder.SetDocName(p.doc, v.Value); err != nil {
		p.moreThanOne("DocumentName", tag.Line)
	}
}

// spdxID serves double duty: the first SPDXID in a document names the
// document itself, every later one names the file being described.
func (p *Parser) spdxID(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		return
	}
	if !p.builder.docSPDXIDSet {
		if err := p.builder.SetDocSPDXID(p.doc, v.Value); err != nil {
			p.logf(msgDocSPDXIDValue, tag.Line)
		}
		return
	}
	if err := p.builder.SetFileSPDXID(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("SPDXID", "FileName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("SPDXID", tag.Line)
		default:
			p.log(msgSPDXRefFormat)
		}
	}
}

func (p *Parser) docComment(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgDocCommentValueType, tag.Line)
		return
	}
	if err := p.builder.SetDocComment(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *CardinalityError:
			p.moreThanOne("DocumentComment", tag.Line)
		default:
			p.logf(msgDocCommentValueType, tag.Line)
		}
	}
}

func (p *Parser) docNamespace(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgDocNamespaceValueType, tag.Line)
		return
	}
	if err := p.builder.SetDocNamespace(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *CardinalityError:
			p.moreThanOne("DocumentNamespace", tag.Line)
		default:
			p.logf(msgDocNamespaceValue, v.Value, v.Line)
		}
	}
}

// extDocRef expects the three-part value the lexer produces for an
// external document reference. An incomplete reference is reported
// against the tag and contributes nothing; a complete one whose URI
// fails validation keeps the partial reference already applied, which
// mirrors how the reference parts are applied one by one.
func (p *Parser) extDocRef(tag Token) {
	if p.tok.Type != TokenDocRefID {
		p.logf(msgExtDocRefValue, tag.Line)
		return
	}
	ref := p.tok
	p.next()
	if p.tok.Type != TokenDocURI {
		p.logf(msgExtDocRefValue, tag.Line)
		return
	}
	uri := p.tok
	p.next()
	if p.tok.Type != TokenExtChecksum {
		p.logf(msgExtDocRefValue, tag.Line)
		return
	}
	sum := p.tok
	p.next()

	p.builder.SetExtDocID(p.doc, ref.Value)
	if err := p.builder.SetExtDocURI(p.doc, uri.Value); err != nil {
		p.logf(msgExtDocRefValue, ref.Line)
		return
	}
	p.builder.SetExtDocChecksum(p.doc, sum.Value)
}

func (p *Parser) creator(tag Token) {
	who, ok := p.entity()
	if !ok {
		p.logf(msgCreatorValueType, tag.Line)
		return
	}
	if who == nil {
		return
	}
	if err := p.builder.AddCreator(p.doc, who); err != nil {
		p.logf(msgCreatorValueType, tag.Line)
	}
}

func (p *Parser) created(tag Token) {
	v, ok := p.takeDate()
	if !ok {
		p.logf(msgCreatedValueType, tag.Line)
		return
	}
	if err := p.builder.SetCreatedDate(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *CardinalityError:
			p.moreThanOne("Created", tag.Line)
		default:
			p.logf(msgCreatedValueType, tag.Line)
		}
	}
}

func (p *Parser) creatorComment(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgCreatorCommentValueType, tag.Line)
		return
	}
	if err := p.builder.SetCreationComment(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *CardinalityError:
			p.moreThanOne("CreatorComment", tag.Line)
		default:
			p.logf(msgCreatorCommentValueType, tag.Line)
		}
	}
}

func (p *Parser) licenseListVersion(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgLicListVerValueType, tag.Line)
		return
	}
	if err := p.builder.SetLicenseListVersion(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *CardinalityError:
			p.moreThanOne("LicenseListVersion", tag.Line)
		default:
			p.logf(msgLicListVerValue, v.Value, v.Line)
		}
	}
}

func (p *Parser) reviewer(tag Token) {
	who, ok := p.entity()
	if !ok {
		p.logf(msgReviewerValueType, tag.Line)
		return
	}
	if who == nil {
		return
	}
	if err := p.builder.AddReviewer(p.doc, who); err != nil {
		p.logf(msgReviewerValueType, tag.Line)
	}
}

func (p *Parser) reviewDate(tag Token) {
	v, ok := p.takeDate()
	if !ok {
		p.logf(msgReviewDateValueType, tag.Line)
		return
	}
	if err := p.builder.AddReviewDate(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("ReviewDate", "Reviewer", tag.Line)
		case *CardinalityError:
			p.moreThanOne("ReviewDate", tag.Line)
		default:
			p.logf(msgReviewDateValueType, tag.Line)
		}
	}
}

func (p *Parser) reviewComment(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgReviewCommentValueType, tag.Line)
		return
	}
	if err := p.builder.AddReviewComment(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("ReviewComment", "Reviewer", tag.Line)
		case *CardinalityError:
			p.moreThanOne("ReviewComment", tag.Line)
		default:
			p.logf(msgReviewCommentValueType, tag.Line)
		}
	}
}

func (p *Parser) annotator(tag Token) {
	who, ok := p.entity()
	if !ok {
		p.logf(msgAnnotatorValueType, tag.Line)
		return
	}
	if who == nil {
		return
	}
	if err := p.builder.AddAnnotator(p.doc, who); err != nil {
		p.logf(msgAnnotatorValueType, tag.Line)
	}
}

func (p *Parser) annotationDate(tag Token) {
	v, ok := p.takeDate()
	if !ok {
		p.logf(msgAnnotationDateValueType, tag.Line)
		return
	}
	if err := p.builder.AddAnnotationDate(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("AnnotationDate", "Annotator", tag.Line)
		case *CardinalityError:
			p.moreThanOne("AnnotationDate", tag.Line)
		default:
			p.logf(msgAnnotationDateValueType, tag.Line)
		}
	}
}

func (p *Parser) annotationComment(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgAnnotationCommentValueType, tag.Line)
		return
	}
	if err := p.builder.AddAnnotationComment(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("AnnotationComment", "Annotator", tag.Line)
		case *CardinalityError:
			p.moreThanOne("AnnotationComment", tag.Line)
		default:
			p.logf(msgAnnotationCommentValueType, tag.Line)
		}
	}
}

// annotationType accepts OTHER as well as a plain line because the
// lexer classifies the bare word OTHER as a keyword before the tag
// grammar sees it.
func (p *Parser) annotationType(tag Token) {
	var v Token
	switch p.tok.Type {
	case TokenLine, TokenOtherType:
		v = p.tok
		p.next()
	default:
		p.logf(msgAnnotationTypeValue, tag.Line)
		return
	}
	if err := p.builder.AddAnnotationType(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("AnnotationType", "Annotator", tag.Line)
		case *CardinalityError:
			p.moreThanOne("AnnotationType", tag.Line)
		default:
			p.logf(msgAnnotationTypeValue, tag.Line)
		}
	}
}

func (p *Parser) annotationRef(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.log(msgAnnotationSPDXIDValue)
		return
	}
	if err := p.builder.SetAnnotationSPDXID(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("SPDXREF", "Annotator", tag.Line)
		case *CardinalityError:
			p.moreThanOne("SPDXREF", tag.Line)
		default:
			p.log(msgAnnotationSPDXIDValue)
		}
	}
}
