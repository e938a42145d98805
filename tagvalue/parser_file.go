package tagvalue

func (p *Parser) fileName(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgFileNameValue, tag.Line)
		return
	}
	if err := p.builder.SetFileName(p.doc, v.Value); err != nil {
		p.orderError("FileName", "PackageName", tag.Line)
	}
}

func (p *Parser) fileComment(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgFileCommentValue, tag.Line)
		return
	}
	if err := p.builder.SetFileComment(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("FileComment", "FileName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("FileComment", tag.Line)
		default:
			p.logf(msgFileCommentValue, tag.Line)
		}
	}
}

func (p *Parser) fileType(tag Token) {
	var v Token
	switch p.tok.Type {
	case TokenSource, TokenBinary, TokenArchive, TokenOtherType:
		v = p.tok
		p.next()
	default:
		p.logf(msgFileTypeValue, tag.Line)
		return
	}
	if err := p.builder.SetFileType(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("FileType", "FileName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("FileType", tag.Line)
		default:
			p.logf(msgFileTypeValue, tag.Line)
		}
	}
}

func (p *Parser) fileChecksum(tag Token) {
	v, ok := p.takeChecksum()
	if !ok {
		p.logf(msgFileChecksumValue, tag.Line)
		return
	}
	if err := p.builder.SetFileChecksum(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("FileChecksum", "FileName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("FileChecksum", tag.Line)
		default:
			p.logf(msgFileChecksumValue, tag.Line)
		}
	}
}

func (p *Parser) fileLicenseConcluded(tag Token) {
	v, ok := p.concLicense()
	if !ok {
		p.logf(msgFileLicsConcValue, tag.Line)
		return
	}
	if err := p.builder.SetFileConcludedLicense(p.doc, v); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("LicenseConcluded", "FileName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("LicenseConcluded", tag.Line)
		default:
			p.logf(msgFileLicsConcValue, tag.Line)
		}
	}
}

func (p *Parser) fileLicenseInfo(tag Token) {
	v, ok := p.licenseInfoValue()
	if !ok {
		p.logf(msgFileLicsInfoValue, tag.Line)
		return
	}
	if err := p.builder.AddFileLicenseInFile(p.doc, v); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("LicenseInfoInFile", "FileName", tag.Line)
		default:
			p.logf(msgFileLicsInfoValue, tag.Line)
		}
	}
}

func (p *Parser) fileCopyright(tag Token) {
	v, ok := p.takeTextOrSentinel()
	if !ok {
		p.logf(msgFileCopyrightValue, tag.Line)
		return
	}
	if err := p.builder.SetFileCopyright(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("FileCopyrightText", "FileName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("FileCopyrightText", tag.Line)
		default:
			p.logf(msgFileCopyrightValue, tag.Line)
		}
	}
}

func (p *Parser) fileLicenseComment(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgFileLicsCommentValue, tag.Line)
		return
	}
	if err := p.builder.SetFileLicenseComment(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("LicenseComments", "FileName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("LicenseComments", tag.Line)
		default:
			p.logf(msgFileLicsCommentValue, tag.Line)
		}
	}
}

func (p *Parser) fileNotice(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgFileNoticeValue, tag.Line)
		return
	}
	if err := p.builder.SetFileNotice(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("FileNotice", "FileName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("FileNotice", tag.Line)
		default:
			p.logf(msgFileNoticeValue, tag.Line)
		}
	}
}

func (p *Parser) fileContributor(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgFileContribValue, tag.Line)
		return
	}
	if err := p.builder.AddFileContributor(p.doc, v.Value); err != nil {
		p.orderError("FileContributor", "FileName", tag.Line)
	}
}

func (p *Parser) fileDependency(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgFileDepValue, tag.Line)
		return
	}
	if err := p.builder.AddFileDependency(p.doc, v.Value); err != nil {
		p.orderError("FileDependency", "FileName", tag.Line)
	}
}

// artifactName opens an artifact group. The group stays open even when
// the value is bad, so a following home page or URI still binds to it;
// whatever token the failed value left behind is the main loop's
// problem.
func (p *Parser) artifactName(tag Token) {
	p.artOpen = true
	p.artHome = false
	p.artURI = false
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgArtifactNameValue, tag.Line)
		return
	}
	if err := p.builder.SetFileArtifact(p.doc, "name", v.Value); err != nil {
		p.orderError("ArtifactOfProjectName", "FileName", tag.Line)
	}
}

// artifactHomePage handles the optional home page member. Outside a
// group the statement is dropped; a second home page inside one group
// closes it with a diagnostic.
func (p *Parser) artifactHomePage(tag Token) {
	if !p.artOpen {
		return
	}
	if p.artHome {
		p.logf(msgArtifactOptOrder, tag.Line)
		p.artOpen = false
		return
	}
	p.artHome = true
	switch p.tok.Type {
	case TokenLine, TokenUnknownValue:
		v := p.tok
		p.next()
		if err := p.builder.SetFileArtifact(p.doc, "home", v.Value); err != nil {
			p.orderError("ArtifactOfProjectHomePage", "FileName", tag.Line)
		}
	default:
		p.logf(msgArtifactHomeValue, tag.Line)
	}
}

func (p *Parser) artifactURI(tag Token) {
	if !p.artOpen {
		return
	}
	if p.artURI {
		p.logf(msgArtifactOptOrder, tag.Line)
		p.artOpen = false
		return
	}
	p.artURI = true
	switch p.tok.Type {
	case TokenLine, TokenUnknownValue:
		v := p.tok
		p.next()
		if err := p.builder.SetFileArtifact(p.doc, "uri", v.Value); err != nil {
			p.orderError("ArtifactOfProjectURI", "FileName", tag.Line)
		}
	default:
		p.logf(msgArtifactURIValue, tag.Line)
	}
}
