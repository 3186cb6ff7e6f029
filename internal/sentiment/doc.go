// Package sentiment provides the classifier backends behind the inference
// service.
//
// Every backend satisfies service.Classifier: given a piece of text it returns
// the single top label and its confidence in [0,1]. The label vocabulary is
// backend-defined:
//
//   - vader: POSITIVE / NEGATIVE, and NEUTRAL when a neutral band is configured
//   - openai: whatever the model returns, upper-cased
//   - hugot: the labels of the loaded transformer model
//
// Backends are created through New, which wraps them with Safe so that every
// failure, including a panic, surfaces as common.ErrClassification.
package sentiment
