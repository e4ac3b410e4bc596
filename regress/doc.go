// Package regress implements the regression model families the analysis
// report compares, behind a small capability interface the evaluation
// harness consumes.
//
// # Capabilities
//
// A model family is a Trainer; fitting yields a Predictor:
//
//	trainer := regress.NewLinear()
//	model, err := trainer.Fit(train, "Sales")
//	preds, err := model.Predict(heldOut)
//
// Any type with Fit and Name may be plugged into the harness, so families
// implemented elsewhere (tree learners, gradient boosters) slot in without
// changes here.
//
// # Families
//
//   - Linear: ordinary least squares over the numeric feature columns,
//     solved by gonum's QR least squares. Rank-deficient designs and
//     non-finite cells fail the fit rather than producing silent garbage.
//   - Mean: constant baseline predicting the training-target mean.
//
// Feature engineering belongs to the dataset package: fitting Linear on a
// dataset expanded with WithQuadratic or WithLog is how the report iterates
// on model variants.
package regress
