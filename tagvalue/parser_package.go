package tagvalue

func (p *Parser) pkgName(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgPackageNameValue, tag.Line)
		return
	}
	if err := p.builder.CreatePackage(p.doc, v.Value); err != nil {
		p.moreThanOne("PackageName", tag.Line)
	}
}

func (p *Parser) pkgVersion(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgPkgVersionValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgVersion(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageVersion", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageVersion", tag.Line)
		default:
			p.logf(msgPkgVersionValue, tag.Line)
		}
	}
}

func (p *Parser) pkgFileName(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgPkgFileNameValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgFileName(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageFileName", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageFileName", tag.Line)
		default:
			p.logf(msgPkgFileNameValue, tag.Line)
		}
	}
}

// pkgSupplier reports twice for an entity value that fails its own
// validation: once against the entity and once against the property.
func (p *Parser) pkgSupplier(tag Token) {
	e, ok := p.supplierValue()
	if !ok {
		p.logf(msgPkgSupplierValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgSupplier(p.doc, e); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageSupplier", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageSupplier", tag.Line)
		default:
			p.logf(msgPkgSupplierValue, tag.Line)
		}
	}
}

func (p *Parser) pkgOriginator(tag Token) {
	e, ok := p.supplierValue()
	if !ok {
		p.logf(msgPkgOriginatorValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgOriginator(p.doc, e); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageOriginator", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageOriginator", tag.Line)
		default:
			p.logf(msgPkgOriginatorValue, tag.Line)
		}
	}
}

func (p *Parser) pkgDownload(tag Token) {
	v, ok := p.takeLineOrSentinel()
	if !ok {
		p.logf(msgPkgDownloadValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgDownload(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageDownloadLocation", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageDownloadLocation", tag.Line)
		default:
			p.logf(msgPkgDownloadValue, tag.Line)
		}
	}
}

func (p *Parser) pkgHome(tag Token) {
	v, ok := p.takeLineOrSentinel()
	if !ok {
		p.logf(msgPkgHomeValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgHome(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageHomePage", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageHomePage", tag.Line)
		default:
			p.logf(msgPkgHomeValue, tag.Line)
		}
	}
}

func (p *Parser) pkgVerifCode(tag Token) {
	v, ok := p.takeLine()
	if !ok {
		p.logf(msgPkgVerifCodeValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgVerifCode(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageVerificationCode", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageVerificationCode", tag.Line)
		default:
			p.logf(msgPkgVerifCodeValue, tag.Line)
		}
	}
}

func (p *Parser) pkgChecksum(tag Token) {
	v, ok := p.takeChecksum()
	if !ok {
		p.logf(msgPkgChecksumValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgChecksum(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageChecksum", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageChecksum", tag.Line)
		default:
			p.logf(msgPkgChecksumValue, tag.Line)
		}
	}
}

func (p *Parser) pkgSourceInfo(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgPkgSrcInfoValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgSourceInfo(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageSourceInfo", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageSourceInfo", tag.Line)
		default:
			p.logf(msgPkgSrcInfoValue, tag.Line)
		}
	}
}

func (p *Parser) pkgLicenseConcluded(tag Token) {
	v, ok := p.concLicense()
	if !ok {
		p.logf(msgPkgLicsConcValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgConcludedLicense(p.doc, v); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageLicenseConcluded", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageLicenseConcluded", tag.Line)
		default:
			p.logf(msgPkgLicsConcValue, tag.Line)
		}
	}
}

func (p *Parser) pkgLicenseFromFiles(tag Token) {
	v, ok := p.licenseInfoValue()
	if !ok {
		p.logf(msgPkgLicFromFileValue, tag.Line)
		return
	}
	if err := p.builder.AddPkgLicenseFromFile(p.doc, v); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageLicenseInfoFromFiles", "PackageName", tag.Line)
		default:
			p.logf(msgPkgLicFromFileValue, tag.Line)
		}
	}
}

func (p *Parser) pkgLicenseDeclared(tag Token) {
	v, ok := p.concLicense()
	if !ok {
		p.logf(msgPkgLicsDeclValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgDeclaredLicense(p.doc, v); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageLicenseDeclared", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageLicenseDeclared", tag.Line)
		default:
			p.logf(msgPkgLicsDeclValue, tag.Line)
		}
	}
}

func (p *Parser) pkgLicenseComment(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgPkgLicsCommentValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgLicenseComment(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageLicenseComments", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageLicenseComments", tag.Line)
		default:
			p.logf(msgPkgLicsCommentValue, tag.Line)
		}
	}
}

func (p *Parser) pkgCopyright(tag Token) {
	v, ok := p.takeTextOrSentinel()
	if !ok {
		p.logf(msgPkgCopyrightValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgCopyright(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageCopyrightText", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageCopyrightText", tag.Line)
		default:
			p.logf(msgPkgCopyrightValue, tag.Line)
		}
	}
}

func (p *Parser) pkgSummary(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgPkgSummaryValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgSummary(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageSummary", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageSummary", tag.Line)
		default:
			p.logf(msgPkgSummaryValue, tag.Line)
		}
	}
}

func (p *Parser) pkgDescription(tag Token) {
	v, ok := p.takeText()
	if !ok {
		p.logf(msgPkgDescValue, tag.Line)
		return
	}
	if err := p.builder.SetPkgDescription(p.doc, v.Value); err != nil {
		switch err.(type) {
		case *OrderError:
			p.orderError("PackageDescription", "PackageName", tag.Line)
		case *CardinalityError:
			p.moreThanOne("PackageDescription", tag.Line)
		default:
			p.logf(msgPkgDescValue, tag.Line)
		}
	}
}
