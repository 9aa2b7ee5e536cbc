// Package symbols builds the scope tree for a parsed file and resolves
// every identifier use to a declaration. Scopes and symbols live in
// arenas addressed by ID, mirroring the AST storage model.
package symbols
