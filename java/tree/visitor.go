package tree

// Visitor has one method per node kind. Each method receives the node and
// its parent (nil for the root) and returns the Action to apply.
type Visitor interface {
	VisitName(n Name, parent Node) Action
	VisitQualifiedName(n QualifiedName, parent Node) Action
	VisitModifier(n Modifier, parent Node) Action

	VisitAnnotation(n *Annotation, parent Node) Action
	VisitAnnotationValuePair(n *AnnotationValuePair, parent Node) Action
	VisitAnnotationArray(n *AnnotationArray, parent Node) Action

	VisitPrimitiveType(n *PrimitiveType, parent Node) Action
	VisitVoidType(n *VoidType, parent Node) Action
	VisitVarType(n *VarType, parent Node) Action
	VisitClassType(n *ClassType, parent Node) Action
	VisitArrayType(n *ArrayType, parent Node) Action
	VisitDimension(n *Dimension, parent Node) Action
	VisitWildcardType(n *WildcardType, parent Node) Action
	VisitTypeParameter(n *TypeParameter, parent Node) Action
	VisitTypeUnion(n *TypeUnion, parent Node) Action
	VisitTypeIntersection(n *TypeIntersection, parent Node) Action

	VisitLiteral(n *Literal, parent Node) Action
	VisitThis(n *This, parent Node) Action
	VisitClassLiteral(n *ClassLiteral, parent Node) Action
	VisitParenExpr(n *ParenExpr, parent Node) Action
	VisitFieldAccess(n *FieldAccess, parent Node) Action
	VisitSuperFieldAccess(n *SuperFieldAccess, parent Node) Action
	VisitMethodCall(n *MethodCall, parent Node) Action
	VisitSuperMethodCall(n *SuperMethodCall, parent Node) Action
	VisitIndexExpr(n *IndexExpr, parent Node) Action
	VisitClassCreator(n *ClassCreator, parent Node) Action
	VisitArrayCreator(n *ArrayCreator, parent Node) Action
	VisitSize(n *Size, parent Node) Action
	VisitArrayInitializer(n *ArrayInitializer, parent Node) Action
	VisitUnaryExpr(n *UnaryExpr, parent Node) Action
	VisitPreIncrementExpr(n *PreIncrementExpr, parent Node) Action
	VisitPreDecrementExpr(n *PreDecrementExpr, parent Node) Action
	VisitPostIncrementExpr(n *PostIncrementExpr, parent Node) Action
	VisitPostDecrementExpr(n *PostDecrementExpr, parent Node) Action
	VisitCastExpr(n *CastExpr, parent Node) Action
	VisitBinaryExpr(n *BinaryExpr, parent Node) Action
	VisitInstanceOfExpr(n *InstanceOfExpr, parent Node) Action
	VisitConditionalExpr(n *ConditionalExpr, parent Node) Action
	VisitAssignExpr(n *AssignExpr, parent Node) Action
	VisitLambda(n *Lambda, parent Node) Action
	VisitMethodReference(n *MethodReference, parent Node) Action
	VisitConstructorReference(n *ConstructorReference, parent Node) Action
	VisitSuperMethodReference(n *SuperMethodReference, parent Node) Action
	VisitSwitchExpr(n *SwitchExpr, parent Node) Action

	VisitTypePattern(n *TypePattern, parent Node) Action
	VisitRecordPattern(n *RecordPattern, parent Node) Action

	VisitBlock(n *Block, parent Node) Action
	VisitEmptyStmt(n *EmptyStmt, parent Node) Action
	VisitExpressionStmt(n *ExpressionStmt, parent Node) Action
	VisitIfStmt(n *IfStmt, parent Node) Action
	VisitWhileStmt(n *WhileStmt, parent Node) Action
	VisitDoStmt(n *DoStmt, parent Node) Action
	VisitForStmt(n *ForStmt, parent Node) Action
	VisitForEachStmt(n *ForEachStmt, parent Node) Action
	VisitLabeledStmt(n *LabeledStmt, parent Node) Action
	VisitBreakStmt(n *BreakStmt, parent Node) Action
	VisitContinueStmt(n *ContinueStmt, parent Node) Action
	VisitReturnStmt(n *ReturnStmt, parent Node) Action
	VisitThrowStmt(n *ThrowStmt, parent Node) Action
	VisitYieldStmt(n *YieldStmt, parent Node) Action
	VisitSynchronizedStmt(n *SynchronizedStmt, parent Node) Action
	VisitTryStmt(n *TryStmt, parent Node) Action
	VisitCatchClause(n *CatchClause, parent Node) Action
	VisitAssertStmt(n *AssertStmt, parent Node) Action
	VisitSwitchStmt(n *SwitchStmt, parent Node) Action
	VisitSwitchCase(n *SwitchCase, parent Node) Action
	VisitLocalVarDecl(n *LocalVarDecl, parent Node) Action
	VisitVariableDeclarator(n *VariableDeclarator, parent Node) Action
	VisitLocalClassDecl(n *LocalClassDecl, parent Node) Action
	VisitConstructorCall(n *ConstructorCall, parent Node) Action
	VisitPrintStmt(n *PrintStmt, parent Node) Action

	VisitCompilationUnit(n *CompilationUnit, parent Node) Action
	VisitModularCompilationUnit(n *ModularCompilationUnit, parent Node) Action
	VisitPackageDecl(n *PackageDecl, parent Node) Action
	VisitImportDecl(n *ImportDecl, parent Node) Action
	VisitClassDecl(n *ClassDecl, parent Node) Action
	VisitInterfaceDecl(n *InterfaceDecl, parent Node) Action
	VisitEnumDecl(n *EnumDecl, parent Node) Action
	VisitEnumConstant(n *EnumConstant, parent Node) Action
	VisitRecordDecl(n *RecordDecl, parent Node) Action
	VisitAnnotationDecl(n *AnnotationDecl, parent Node) Action
	VisitClassBody(n *ClassBody, parent Node) Action

	VisitFieldDecl(n *FieldDecl, parent Node) Action
	VisitMethodDecl(n *MethodDecl, parent Node) Action
	VisitConstructorDecl(n *ConstructorDecl, parent Node) Action
	VisitInitializerBlock(n *InitializerBlock, parent Node) Action
	VisitAnnotationMethod(n *AnnotationMethod, parent Node) Action
	VisitFormalParameter(n *FormalParameter, parent Node) Action
	VisitThisParameter(n *ThisParameter, parent Node) Action

	VisitModuleDecl(n *ModuleDecl, parent Node) Action
	VisitRequiresDirective(n *RequiresDirective, parent Node) Action
	VisitExportsDirective(n *ExportsDirective, parent Node) Action
	VisitOpensDirective(n *OpensDirective, parent Node) Action
	VisitUsesDirective(n *UsesDirective, parent Node) Action
	VisitProvidesDirective(n *ProvidesDirective, parent Node) Action
}

// BaseVisitor descends into every node except the leaf kinds Name,
// QualifiedName and Modifier. Embed it and override the methods of
// interest.
type BaseVisitor struct{}

var _ Visitor = BaseVisitor{}

func (BaseVisitor) VisitName(n Name, parent Node) Action                   { return Skip }
func (BaseVisitor) VisitQualifiedName(n QualifiedName, parent Node) Action { return Skip }
func (BaseVisitor) VisitModifier(n Modifier, parent Node) Action           { return Skip }

func (BaseVisitor) VisitAnnotation(n *Annotation, parent Node) Action                   { return Descend }
func (BaseVisitor) VisitAnnotationValuePair(n *AnnotationValuePair, parent Node) Action { return Descend }
func (BaseVisitor) VisitAnnotationArray(n *AnnotationArray, parent Node) Action         { return Descend }

func (BaseVisitor) VisitPrimitiveType(n *PrimitiveType, parent Node) Action       { return Descend }
func (BaseVisitor) VisitVoidType(n *VoidType, parent Node) Action                 { return Descend }
func (BaseVisitor) VisitVarType(n *VarType, parent Node) Action                   { return Descend }
func (BaseVisitor) VisitClassType(n *ClassType, parent Node) Action               { return Descend }
func (BaseVisitor) VisitArrayType(n *ArrayType, parent Node) Action               { return Descend }
func (BaseVisitor) VisitDimension(n *Dimension, parent Node) Action               { return Descend }
func (BaseVisitor) VisitWildcardType(n *WildcardType, parent Node) Action         { return Descend }
func (BaseVisitor) VisitTypeParameter(n *TypeParameter, parent Node) Action       { return Descend }
func (BaseVisitor) VisitTypeUnion(n *TypeUnion, parent Node) Action               { return Descend }
func (BaseVisitor) VisitTypeIntersection(n *TypeIntersection, parent Node) Action { return Descend }

func (BaseVisitor) VisitLiteral(n *Literal, parent Node) Action                           { return Descend }
func (BaseVisitor) VisitThis(n *This, parent Node) Action                                 { return Descend }
func (BaseVisitor) VisitClassLiteral(n *ClassLiteral, parent Node) Action                 { return Descend }
func (BaseVisitor) VisitParenExpr(n *ParenExpr, parent Node) Action                       { return Descend }
func (BaseVisitor) VisitFieldAccess(n *FieldAccess, parent Node) Action                   { return Descend }
func (BaseVisitor) VisitSuperFieldAccess(n *SuperFieldAccess, parent Node) Action         { return Descend }
func (BaseVisitor) VisitMethodCall(n *MethodCall, parent Node) Action                     { return Descend }
func (BaseVisitor) VisitSuperMethodCall(n *SuperMethodCall, parent Node) Action           { return Descend }
func (BaseVisitor) VisitIndexExpr(n *IndexExpr, parent Node) Action                       { return Descend }
func (BaseVisitor) VisitClassCreator(n *ClassCreator, parent Node) Action                 { return Descend }
func (BaseVisitor) VisitArrayCreator(n *ArrayCreator, parent Node) Action                 { return Descend }
func (BaseVisitor) VisitSize(n *Size, parent Node) Action                                 { return Descend }
func (BaseVisitor) VisitArrayInitializer(n *ArrayInitializer, parent Node) Action         { return Descend }
func (BaseVisitor) VisitUnaryExpr(n *UnaryExpr, parent Node) Action                       { return Descend }
func (BaseVisitor) VisitPreIncrementExpr(n *PreIncrementExpr, parent Node) Action         { return Descend }
func (BaseVisitor) VisitPreDecrementExpr(n *PreDecrementExpr, parent Node) Action         { return Descend }
func (BaseVisitor) VisitPostIncrementExpr(n *PostIncrementExpr, parent Node) Action       { return Descend }
func (BaseVisitor) VisitPostDecrementExpr(n *PostDecrementExpr, parent Node) Action       { return Descend }
func (BaseVisitor) VisitCastExpr(n *CastExpr, parent Node) Action                         { return Descend }
func (BaseVisitor) VisitBinaryExpr(n *BinaryExpr, parent Node) Action                     { return Descend }
func (BaseVisitor) VisitInstanceOfExpr(n *InstanceOfExpr, parent Node) Action             { return Descend }
func (BaseVisitor) VisitConditionalExpr(n *ConditionalExpr, parent Node) Action           { return Descend }
func (BaseVisitor) VisitAssignExpr(n *AssignExpr, parent Node) Action                     { return Descend }
func (BaseVisitor) VisitLambda(n *Lambda, parent Node) Action                             { return Descend }
func (BaseVisitor) VisitMethodReference(n *MethodReference, parent Node) Action           { return Descend }
func (BaseVisitor) VisitConstructorReference(n *ConstructorReference, parent Node) Action { return Descend }
func (BaseVisitor) VisitSuperMethodReference(n *SuperMethodReference, parent Node) Action { return Descend }
func (BaseVisitor) VisitSwitchExpr(n *SwitchExpr, parent Node) Action                     { return Descend }

func (BaseVisitor) VisitTypePattern(n *TypePattern, parent Node) Action     { return Descend }
func (BaseVisitor) VisitRecordPattern(n *RecordPattern, parent Node) Action { return Descend }

func (BaseVisitor) VisitBlock(n *Block, parent Node) Action                           { return Descend }
func (BaseVisitor) VisitEmptyStmt(n *EmptyStmt, parent Node) Action                   { return Descend }
func (BaseVisitor) VisitExpressionStmt(n *ExpressionStmt, parent Node) Action         { return Descend }
func (BaseVisitor) VisitIfStmt(n *IfStmt, parent Node) Action                         { return Descend }
func (BaseVisitor) VisitWhileStmt(n *WhileStmt, parent Node) Action                   { return Descend }
func (BaseVisitor) VisitDoStmt(n *DoStmt, parent Node) Action                         { return Descend }
func (BaseVisitor) VisitForStmt(n *ForStmt, parent Node) Action                       { return Descend }
func (BaseVisitor) VisitForEachStmt(n *ForEachStmt, parent Node) Action               { return Descend }
func (BaseVisitor) VisitLabeledStmt(n *LabeledStmt, parent Node) Action               { return Descend }
func (BaseVisitor) VisitBreakStmt(n *BreakStmt, parent Node) Action                   { return Descend }
func (BaseVisitor) VisitContinueStmt(n *ContinueStmt, parent Node) Action             { return Descend }
func (BaseVisitor) VisitReturnStmt(n *ReturnStmt, parent Node) Action                 { return Descend }
func (BaseVisitor) VisitThrowStmt(n *ThrowStmt, parent Node) Action                   { return Descend }
func (BaseVisitor) VisitYieldStmt(n *YieldStmt, parent Node) Action                   { return Descend }
func (BaseVisitor) VisitSynchronizedStmt(n *SynchronizedStmt, parent Node) Action     { return Descend }
func (BaseVisitor) VisitTryStmt(n *TryStmt, parent Node) Action                       { return Descend }
func (BaseVisitor) VisitCatchClause(n *CatchClause, parent Node) Action               { return Descend }
func (BaseVisitor) VisitAssertStmt(n *AssertStmt, parent Node) Action                 { return Descend }
func (BaseVisitor) VisitSwitchStmt(n *SwitchStmt, parent Node) Action                 { return Descend }
func (BaseVisitor) VisitSwitchCase(n *SwitchCase, parent Node) Action                 { return Descend }
func (BaseVisitor) VisitLocalVarDecl(n *LocalVarDecl, parent Node) Action             { return Descend }
func (BaseVisitor) VisitVariableDeclarator(n *VariableDeclarator, parent Node) Action { return Descend }
func (BaseVisitor) VisitLocalClassDecl(n *LocalClassDecl, parent Node) Action         { return Descend }
func (BaseVisitor) VisitConstructorCall(n *ConstructorCall, parent Node) Action       { return Descend }
func (BaseVisitor) VisitPrintStmt(n *PrintStmt, parent Node) Action                   { return Descend }

func (BaseVisitor) VisitCompilationUnit(n *CompilationUnit, parent Node) Action               { return Descend }
func (BaseVisitor) VisitModularCompilationUnit(n *ModularCompilationUnit, parent Node) Action { return Descend }
func (BaseVisitor) VisitPackageDecl(n *PackageDecl, parent Node) Action                       { return Descend }
func (BaseVisitor) VisitImportDecl(n *ImportDecl, parent Node) Action                         { return Descend }
func (BaseVisitor) VisitClassDecl(n *ClassDecl, parent Node) Action                           { return Descend }
func (BaseVisitor) VisitInterfaceDecl(n *InterfaceDecl, parent Node) Action                   { return Descend }
func (BaseVisitor) VisitEnumDecl(n *EnumDecl, parent Node) Action                             { return Descend }
func (BaseVisitor) VisitEnumConstant(n *EnumConstant, parent Node) Action                     { return Descend }
func (BaseVisitor) VisitRecordDecl(n *RecordDecl, parent Node) Action                         { return Descend }
func (BaseVisitor) VisitAnnotationDecl(n *AnnotationDecl, parent Node) Action                 { return Descend }
func (BaseVisitor) VisitClassBody(n *ClassBody, parent Node) Action                           { return Descend }

func (BaseVisitor) VisitFieldDecl(n *FieldDecl, parent Node) Action               { return Descend }
func (BaseVisitor) VisitMethodDecl(n *MethodDecl, parent Node) Action             { return Descend }
func (BaseVisitor) VisitConstructorDecl(n *ConstructorDecl, parent Node) Action   { return Descend }
func (BaseVisitor) VisitInitializerBlock(n *InitializerBlock, parent Node) Action { return Descend }
func (BaseVisitor) VisitAnnotationMethod(n *AnnotationMethod, parent Node) Action { return Descend }
func (BaseVisitor) VisitFormalParameter(n *FormalParameter, parent Node) Action   { return Descend }
func (BaseVisitor) VisitThisParameter(n *ThisParameter, parent Node) Action       { return Descend }

func (BaseVisitor) VisitModuleDecl(n *ModuleDecl, parent Node) Action               { return Descend }
func (BaseVisitor) VisitRequiresDirective(n *RequiresDirective, parent Node) Action { return Descend }
func (BaseVisitor) VisitExportsDirective(n *ExportsDirective, parent Node) Action   { return Descend }
func (BaseVisitor) VisitOpensDirective(n *OpensDirective, parent Node) Action       { return Descend }
func (BaseVisitor) VisitUsesDirective(n *UsesDirective, parent Node) Action         { return Descend }
func (BaseVisitor) VisitProvidesDirective(n *ProvidesDirective, parent Node) Action { return Descend }

func dispatch(v Visitor, n, parent Node) (Action, error) {
	switch x := n.(type) {
	case Name:
		return v.VisitName(x, parent), nil
	case QualifiedName:
		return v.VisitQualifiedName(x, parent), nil
	case Modifier:
		return v.VisitModifier(x, parent), nil
	case *Annotation:
		return v.VisitAnnotation(x, parent), nil
	case *AnnotationValuePair:
		return v.VisitAnnotationValuePair(x, parent), nil
	case *AnnotationArray:
		return v.VisitAnnotationArray(x, parent), nil
	case *PrimitiveType:
		return v.VisitPrimitiveType(x, parent), nil
	case *VoidType:
		return v.VisitVoidType(x, parent), nil
	case *VarType:
		return v.VisitVarType(x, parent), nil
	case *ClassType:
		return v.VisitClassType(x, parent), nil
	case *ArrayType:
		return v.VisitArrayType(x, parent), nil
	case *Dimension:
		return v.VisitDimension(x, parent), nil
	case *WildcardType:
		return v.VisitWildcardType(x, parent), nil
	case *TypeParameter:
		return v.VisitTypeParameter(x, parent), nil
	case *TypeUnion:
		return v.VisitTypeUnion(x, parent), nil
	case *TypeIntersection:
		return v.VisitTypeIntersection(x, parent), nil
	case *Literal:
		return v.VisitLiteral(x, parent), nil
	case *This:
		return v.VisitThis(x, parent), nil
	case *ClassLiteral:
		return v.VisitClassLiteral(x, parent), nil
	case *ParenExpr:
		return v.VisitParenExpr(x, parent), nil
	case *FieldAccess:
		return v.VisitFieldAccess(x, parent), nil
	case *SuperFieldAccess:
		return v.VisitSuperFieldAccess(x, parent), nil
	case *MethodCall:
		return v.VisitMethodCall(x, parent), nil
	case *SuperMethodCall:
		return v.VisitSuperMethodCall(x, parent), nil
	case *IndexExpr:
		return v.VisitIndexExpr(x, parent), nil
	case *ClassCreator:
		return v.VisitClassCreator(x, parent), nil
	case *ArrayCreator:
		return v.VisitArrayCreator(x, parent), nil
	case *Size:
		return v.VisitSize(x, parent), nil
	case *ArrayInitializer:
		return v.VisitArrayInitializer(x, parent), nil
	case *UnaryExpr:
		return v.VisitUnaryExpr(x, parent), nil
	case *PreIncrementExpr:
		return v.VisitPreIncrementExpr(x, parent), nil
	case *PreDecrementExpr:
		return v.VisitPreDecrementExpr(x, parent), nil
	case *PostIncrementExpr:
		return v.VisitPostIncrementExpr(x, parent), nil
	case *PostDecrementExpr:
		return v.VisitPostDecrementExpr(x, parent), nil
	case *CastExpr:
		return v.VisitCastExpr(x, parent), nil
	case *BinaryExpr:
		return v.VisitBinaryExpr(x, parent), nil
	case *InstanceOfExpr:
		return v.VisitInstanceOfExpr(x, parent), nil
	case *ConditionalExpr:
		return v.VisitConditionalExpr(x, parent), nil
	case *AssignExpr:
		return v.VisitAssignExpr(x, parent), nil
	case *Lambda:
		return v.VisitLambda(x, parent), nil
	case *MethodReference:
		return v.VisitMethodReference(x, parent), nil
	case *ConstructorReference:
		return v.VisitConstructorReference(x, parent), nil
	case *SuperMethodReference:
		return v.VisitSuperMethodReference(x, parent), nil
	case *SwitchExpr:
		return v.VisitSwitchExpr(x, parent), nil
	case *TypePattern:
		return v.VisitTypePattern(x, parent), nil
	case *RecordPattern:
		return v.VisitRecordPattern(x, parent), nil
	case *Block:
		return v.VisitBlock(x, parent), nil
	case *EmptyStmt:
		return v.VisitEmptyStmt(x, parent), nil
	case *ExpressionStmt:
		return v.VisitExpressionStmt(x, parent), nil
	case *IfStmt:
		return v.VisitIfStmt(x, parent), nil
	case *WhileStmt:
		return v.VisitWhileStmt(x, parent), nil
	case *DoStmt:
		return v.VisitDoStmt(x, parent), nil
	case *ForStmt:
		return v.VisitForStmt(x, parent), nil
	case *ForEachStmt:
		return v.VisitForEachStmt(x, parent), nil
	case *LabeledStmt:
		return v.VisitLabeledStmt(x, parent), nil
	case *BreakStmt:
		return v.VisitBreakStmt(x, parent), nil
	case *ContinueStmt:
		return v.VisitContinueStmt(x, parent), nil
	case *ReturnStmt:
		return v.VisitReturnStmt(x, parent), nil
	case *ThrowStmt:
		return v.VisitThrowStmt(x, parent), nil
	case *YieldStmt:
		return v.VisitYieldStmt(x, parent), nil
	case *SynchronizedStmt:
		return v.VisitSynchronizedStmt(x, parent), nil
	case *TryStmt:
		return v.VisitTryStmt(x, parent), nil
	case *CatchClause:
		return v.VisitCatchClause(x, parent), nil
	case *AssertStmt:
		return v.VisitAssertStmt(x, parent), nil
	case *SwitchStmt:
		return v.VisitSwitchStmt(x, parent), nil
	case *SwitchCase:
		return v.VisitSwitchCase(x, parent), nil
	case *LocalVarDecl:
		return v.VisitLocalVarDecl(x, parent), nil
	case *VariableDeclarator:
		return v.VisitVariableDeclarator(x, parent), nil
	case *LocalClassDecl:
		return v.VisitLocalClassDecl(x, parent), nil
	case *ConstructorCall:
		return v.VisitConstructorCall(x, parent), nil
	case *PrintStmt:
		return v.VisitPrintStmt(x, parent), nil
	case *CompilationUnit:
		return v.VisitCompilationUnit(x, parent), nil
	case *ModularCompilationUnit:
		return v.VisitModularCompilationUnit(x, parent), nil
	case *PackageDecl:
		return v.VisitPackageDecl(x, parent), nil
	case *ImportDecl:
		return v.VisitImportDecl(x, parent), nil
	case *ClassDecl:
		return v.VisitClassDecl(x, parent), nil
	case *InterfaceDecl:
		return v.VisitInterfaceDecl(x, parent), nil
	case *EnumDecl:
		return v.VisitEnumDecl(x, parent), nil
	case *EnumConstant:
		return v.VisitEnumConstant(x, parent), nil
	case *RecordDecl:
		return v.VisitRecordDecl(x, parent), nil
	case *AnnotationDecl:
		return v.VisitAnnotationDecl(x, parent), nil
	case *ClassBody:
		return v.VisitClassBody(x, parent), nil
	case *FieldDecl:
		return v.VisitFieldDecl(x, parent), nil
	case *MethodDecl:
		return v.VisitMethodDecl(x, parent), nil
	case *ConstructorDecl:
		return v.VisitConstructorDecl(x, parent), nil
	case *InitializerBlock:
		return v.VisitInitializerBlock(x, parent), nil
	case *AnnotationMethod:
		return v.VisitAnnotationMethod(x, parent), nil
	case *FormalParameter:
		return v.VisitFormalParameter(x, parent), nil
	case *ThisParameter:
		return v.VisitThisParameter(x, parent), nil
	case *ModuleDecl:
		return v.VisitModuleDecl(x, parent), nil
	case *RequiresDirective:
		return v.VisitRequiresDirective(x, parent), nil
	case *ExportsDirective:
		return v.VisitExportsDirective(x, parent), nil
	case *OpensDirective:
		return v.VisitOpensDirective(x, parent), nil
	case *UsesDirective:
		return v.VisitUsesDirective(x, parent), nil
	case *ProvidesDirective:
		return v.VisitProvidesDirective(x, parent), nil
	}
	return Action{}, &UnsupportedKindError{Node: n}
}

