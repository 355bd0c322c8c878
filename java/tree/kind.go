package tree

type Kind int

const (
	KindInvalid Kind = iota

	// Leaves
	KindName
	KindQualifiedName
	KindModifier

	// Annotations
	KindAnnotation
	KindAnnotationValuePair
	KindAnnotationArray

	// Types
	KindPrimitiveType
	KindVoidType
	KindVarType
	KindClassType
	KindArrayType
	KindDimension
	KindWildcardType
	KindTypeParameter
	KindTypeUnion
	KindTypeIntersection

	// Expressions
	KindLiteral
	KindThis
	KindClassLiteral
	KindParenExpr
	KindFieldAccess
	KindSuperFieldAccess
	KindMethodCall
	KindSuperMethodCall
	KindIndexExpr
	KindClassCreator
	KindArrayCreator
	KindSize
	KindArrayInitializer
	KindUnaryExpr
	KindPreIncrementExpr
	KindPreDecrementExpr
	KindPostIncrementExpr
	KindPostDecrementExpr
	KindCastExpr
	KindBinaryExpr
	KindInstanceOfExpr
	KindConditionalExpr
	KindAssignExpr
	KindLambda
	KindMethodReference
	KindConstructorReference
	KindSuperMethodReference
	KindSwitchExpr

	// Patterns
	KindTypePattern
	KindRecordPattern

	// Statements
	KindBlock
	KindEmptyStmt
	KindExpressionStmt
	KindIfStmt
	KindWhileStmt
	KindDoStmt
	KindForStmt
	KindForEachStmt
	KindLabeledStmt
	KindBreakStmt
	KindContinueStmt
	KindReturnStmt
	KindThrowStmt
	KindYieldStmt
	KindSynchronizedStmt
	KindTryStmt
	KindCatchClause
	KindAssertStmt
	KindSwitchStmt
	KindSwitchCase
	KindLocalVarDecl
	KindVariableDeclarator
	KindLocalClassDecl
	KindConstructorCall
	KindPrintStmt

	// Declarations
	KindCompilationUnit
	KindModularCompilationUnit
	KindPackageDecl
	KindImportDecl
	KindClassDecl
	KindInterfaceDecl
	KindEnumDecl
	KindEnumConstant
	KindRecordDecl
	KindAnnotationDecl
	KindClassBody

	// Members
	KindFieldDecl
	KindMethodDecl
	KindConstructorDecl
	KindInitializerBlock
	KindAnnotationMethod
	KindFormalParameter
	KindThisParameter

	// Module declarations
	KindModuleDecl
	KindRequiresDirective
	KindExportsDirective
	KindOpensDirective
	KindUsesDirective
	KindProvidesDirective
)

var kindNames = map[Kind]string{
	KindInvalid:                "Invalid",
	KindName:                   "Name",
	KindQualifiedName:          "QualifiedName",
	KindModifier:               "Modifier",
	KindAnnotation:             "Annotation",
	KindAnnotationValuePair:    "AnnotationValuePair",
	KindAnnotationArray:        "AnnotationArray",
	KindPrimitiveType:          "PrimitiveType",
	KindVoidType:               "VoidType",
	KindVarType:                "VarType",
	KindClassType:              "ClassType",
	KindArrayType:              "ArrayType",
	KindDimension:              "Dimension",
	KindWildcardType:           "WildcardType",
	KindTypeParameter:          "TypeParameter",
	KindTypeUnion:              "TypeUnion",
	KindTypeIntersection:       "TypeIntersection",
	KindLiteral:                "Literal",
	KindThis:                   "This",
	KindClassLiteral:           "ClassLiteral",
	KindParenExpr:              "ParenExpr",
	KindFieldAccess:            "FieldAccess",
	KindSuperFieldAccess:       "SuperFieldAccess",
	KindMethodCall:             "MethodCall",
	KindSuperMethodCall:        "SuperMethodCall",
	KindIndexExpr:              "IndexExpr",
	KindClassCreator:           "ClassCreator",
	KindArrayCreator:           "ArrayCreator",
	KindSize:                   "Size",
	KindArrayInitializer:       "ArrayInitializer",
	KindUnaryExpr:              "UnaryExpr",
	KindPreIncrementExpr:       "PreIncrementExpr",
	KindPreDecrementExpr:       "PreDecrementExpr",
	KindPostIncrementExpr:      "PostIncrementExpr",
	KindPostDecrementExpr:      "PostDecrementExpr",
	KindCastExpr:               "CastExpr",
	KindBinaryExpr:             "BinaryExpr",
	KindInstanceOfExpr:         "InstanceOfExpr",
	KindConditionalExpr:        "ConditionalExpr",
	KindAssignExpr:             "AssignExpr",
	KindLambda:                 "Lambda",
	KindMethodReference:        "MethodReference",
	KindConstructorReference:   "ConstructorReference",
	KindSuperMethodReference:   "SuperMethodReference",
	KindSwitchExpr:             "SwitchExpr",
	KindTypePattern:            "TypePattern",
	KindRecordPattern:          "RecordPattern",
	KindBlock:                  "Block",
	KindEmptyStmt:              "EmptyStmt",
	KindExpressionStmt:         "ExpressionStmt",
	KindIfStmt:                 "IfStmt",
	KindWhileStmt:              "WhileStmt",
	KindDoStmt:                 "DoStmt",
	KindForStmt:                "ForStmt",
	KindForEachStmt:            "ForEachStmt",
	KindLabeledStmt:            "LabeledStmt",
	KindBreakStmt:              "BreakStmt",
	KindContinueStmt:           "ContinueStmt",
	KindReturnStmt:             "ReturnStmt",
	KindThrowStmt:              "ThrowStmt",
	KindYieldStmt:              "YieldStmt",
	KindSynchronizedStmt:       "SynchronizedStmt",
	KindTryStmt:                "TryStmt",
	KindCatchClause:            "CatchClause",
	KindAssertStmt:             "AssertStmt",
	KindSwitchStmt:             "SwitchStmt",
	KindSwitchCase:             "SwitchCase",
	KindLocalVarDecl:           "LocalVarDecl",
	KindVariableDeclarator:     "VariableDeclarator",
	KindLocalClassDecl:         "LocalClassDecl",
	KindConstructorCall:        "ConstructorCall",
	KindPrintStmt:              "PrintStmt",
	KindCompilationUnit:        "CompilationUnit",
	KindModularCompilationUnit: "ModularCompilationUnit",
	KindPackageDecl:            "PackageDecl",
	KindImportDecl:             "ImportDecl",
	KindClassDecl:              "ClassDecl",
	KindInterfaceDecl:          "InterfaceDecl",
	KindEnumDecl:               "EnumDecl",
	KindEnumConstant:           "EnumConstant",
	KindRecordDecl:             "RecordDecl",
	KindAnnotationDecl:         "AnnotationDecl",
	KindClassBody:              "ClassBody",
	KindFieldDecl:              "FieldDecl",
	KindMethodDecl:             "MethodDecl",
	KindConstructorDecl:        "ConstructorDecl",
	KindInitializerBlock:       "InitializerBlock",
	KindAnnotationMethod:       "AnnotationMethod",
	KindFormalParameter:        "FormalParameter",
	KindThisParameter:          "ThisParameter",
	KindModuleDecl:             "ModuleDecl",
	KindRequiresDirective:      "RequiresDirective",
	KindExportsDirective:       "ExportsDirective",
	KindOpensDirective:         "OpensDirective",
	KindUsesDirective:          "UsesDirective",
	KindProvidesDirective:      "ProvidesDirective",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
