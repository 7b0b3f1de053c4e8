// Package slha decodes SUSY Les Houches Accord files: the plain-text
// tabular format used in high-energy physics to exchange supersymmetric
// model parameters, mass spectra, mixing matrices and particle decay
// tables.
//
// Two ways to read a file are supported. The field-set builder mirrors a
// statically-typed record:
//
//	fs := slha.NewFieldSet()
//	modsel := slha.RegisterRequired(fs, "modsel", slha.ParseBlock[int8, int8])
//	mass := slha.RegisterOptional(fs, "mass", slha.ParseBlock[int64, float64])
//	if err := fs.Decode(text); err != nil {
//		return err
//	}
//	fmt.Println(modsel.Value().Map[1])
//
// The dynamic Slha object indexes the whole file up front and parses blocks
// on demand:
//
//	doc, err := slha.Parse(text)
//	if err != nil {
//		return err
//	}
//	modsel, found, err := slha.GetBlock(doc, "modsel", slha.ParseBlock[int8, int8])
package slha
