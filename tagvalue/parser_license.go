package tagvalue

// licenseID starts a new extracted licensing info block; everything up
// to the next LicenseID or section change attaches to it.
func (p *Parser) licenseID(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgLicsIDValue, tag.Line)
		return
	}
	if err := p.builder.SetLicenseID(p.doc, v.Value); err != nil {
		p.logf(msgLicsIDValue, v.Line)
	}
}

func (p *Parser) licenseText(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgLicsTextValue, tag.Line)
		return
	}
	if err := p.builder.SetLicenseText(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("ExtractedText", "LicenseID", tag.Line)
		case *CardinalityError:
			p.moreThanOne("ExtractedText", tag.Line)
		default:
			p.logf(msgLicsTextValue, tag.Line)
		}
	}
}

func (p *Parser) licenseName(tag Token) {
	var v Token
	switch p.tok.Type {
	case TokenLine, TokenNoAssertion:
		v = p.tok
		p.next()
	default:
		p.logf(msgLicsNameValue, tag.Line)
		return
	}
	if err := p.builder.SetLicenseName(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("LicenseName", "LicenseID", tag.Line)
		case *CardinalityError:
			p.moreThanOne("LicenseName", tag.Line)
		default:
			p.logf(msgLicsNameValue, tag.Line)
		}
	}
}

func (p *Parser) licenseCrossRef(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgLicsCrossRefValue, tag.Line)
		return
	}
	if err := p.builder.AddLicenseCrossRef(p.doc, v.Value); err != nil {
		p.orderError("LicenseCrossReference", "LicenseID", tag.Line)
	}
}

func (p *Parser) licenseComment(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgLicsCommentValue, tag.Line)
		return
	}
	if err := p.builder.SetLicenseComment(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("LicenseComment", "LicenseID", tag.Line)
		case *CardinalityError:
			p.moreThanOne("LicenseComment", tag.Line)
		default:
			p.logf(msgLicsCommentValue, tag.Line)
		}
	}
}

// snippetSPDXID starts a new snippet. A non-line value is dropped
// without a diagnostic, matching the document SPDXID tag.
func (p *Parser) snippetSPDXID(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		return
	}
	if err := p.builder.CreateSnippet(p.doc, v.Value); err != nil {
		p.log(msgSPDXRefFormat)
	}
}

func (p *Parser) snippetName(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgSnippetNameValue, tag.Line)
		return
	}
	if err := p.builder.SetSnippetName(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("SnippetName", "SnippetSPDXID", tag.Line)
		case *CardinalityError:
			p.moreThanOne("SnippetName", tag.Line)
		default:
			p.logf(msgSnippetNameValue, tag.Line)
		}
	}
}

func (p *Parser) snippetComment(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgSnipCommentValue, tag.Line)
		return
	}
	if err := p.builder.SetSnippetComment(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("SnippetComment", "SnippetSPDXID", tag.Line)
		case *CardinalityError:
			p.moreThanOne("SnippetComment", tag.Line)
		default:
			p.logf(msgSnipCommentValue, tag.Line)
		}
	}
}

func (p *Parser) snippetCopyright(tag Token) {
	v, ok := p.takeTextOrSentinel()
	if !ok {
		p.logf(msgSnipCopyrightValue, tag.Line)
		return
	}
	if err := p.builder.SetSnippetCopyright(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("SnippetCopyrightText", "SnippetSPDXID", tag.Line)
		case *CardinalityError:
			p.moreThanOne("SnippetCopyrightText", tag.Line)
		default:
			p.logf(msgSnipCopyrightValue, tag.Line)
		}
	}
}

func (p *Parser) snippetLicenseComment(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgSnipLicsCommentValue, tag.Line)
		return
	}
	if err := p.builder.SetSnippetLicenseComment(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("SnippetLicenseComments", "SnippetSPDXID", tag.Line)
		case *CardinalityError:
			p.moreThanOne("SnippetLicenseComments", tag.Line)
		default:
			p.logf(msgSnipLicsCommentValue, tag.Line)
		}
	}
}

func (p *Parser) snippetFromFile(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.log(msgSnipFromFileValue)
		return
	}
	if err := p.builder.SetSnippetFromFile(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("SnippetFromFileSPDXID", "SnippetSPDXID", tag.Line)
		case *CardinalityError:
			p.moreThanOne("SnippetFromFileSPDXID", tag.Line)
		default:
			p.log(msgSnipFromFileValue)
		}
	}
}

func (p *Parser) snippetLicenseConcluded(tag Token) {
	v, ok := p.concLicense()
	if !ok {
		p.logf(msgSnipLicsConcValue, tag.Line)
		return
	}
	if err := p.builder.SetSnippetConcludedLicense(p.doc, v); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("SnippetLicenseConcluded", "SnippetSPDXID", tag.Line)
		case *CardinalityError:
			p.moreThanOne("SnippetLicenseConcluded", tag.Line)
		default:
			p.logf(msgSnipLicsConcValue, tag.Line)
		}
	}
}

func (p *Parser) snippetLicenseInfo(tag Token) {
	v, ok := p.licenseInfoValue()
	if !ok {
		p.logf(msgSnipLicsInfoValue, tag.Line)
		return
	}
	if err := p.builder.AddSnippetLicenseInfo(p.doc, v); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("LicenseInfoInSnippet", "SnippetSPDXID", tag.Line)
		default:
			p.logf(msgSnipLicsInfoValue, tag.Line)
		}
	}
}
