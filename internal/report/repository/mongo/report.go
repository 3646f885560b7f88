package mongo

import (
	"context"
	"errors"

	"fluency-srv/internal/model"
	"fluency-srv/internal/report/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateReport - Insert a new report record.
func (r *implRepository) CreateReport(ctx context.Context, opts repository.CreateReportOptions) (*model.Report, error) {
	doc := &model.Report{
		UID:               opts.UID,
		Name:              opts.Name,
		Story:             opts.Story,
		IsAudioUploaded:   opts.IsAudioUploaded,
		IsReportGenerated: false,
	}
	if opts.AudioURL != "" {
		doc.AudioURL = &opts.AudioURL
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.mongo.CreateReport: Failed to insert report: %v", err)
		return nil, repository.ErrReportCreateFailed
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		r.l.Errorf(ctx, "report.repository.mongo.CreateReport: Unexpected inserted id type %T", res.InsertedID)
		return nil, repository.ErrReportCreateFailed
	}
	doc.ID = id

	return doc, nil
}

// ReplaceReport - Fully overwrite an existing record. The replacement
// carries no scoring fields, so a prior score is dropped by design.
func (r *implRepository) ReplaceReport(ctx context.Context, opts repository.ReplaceReportOptions) (*model.Report, error) {
	id, err := primitive.ObjectIDFromHex(opts.ReportID)
	if err != nil {
		return nil, repository.ErrReportNotFound
	}

	replacement := &model.Report{
		ID:                id,
		UID:               opts.UID,
		Name:              opts.Name,
		Story:             opts.Story,
		AudioURL:          &opts.AudioURL,
		IsAudioUploaded:   true,
		IsReportGenerated: false,
	}

	var updated model.Report
	err = r.coll.FindOneAndReplace(
		ctx,
		bson.M{"_id": id},
		replacement,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.mongo.ReplaceReport: Failed to replace report: %v", err)
		return nil, repository.ErrReportUpdateFailed
	}

	return &updated, nil
}

// UpdateReportDetails - Merge identity fields only.
func (r *implRepository) UpdateReportDetails(ctx context.Context, opts repository.UpdateDetailsOptions) (*model.Report, error) {
	id, err := primitive.ObjectIDFromHex(opts.ReportID)
	if err != nil {
		return nil, repository.ErrReportNotFound
	}

	update := bson.M{"$set": bson.M{
		"uid":   opts.UID,
		"name":  opts.Name,
		"story": opts.Story,
	}}

	var updated model.Report
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.mongo.UpdateReportDetails: Failed to update report: %v", err)
		return nil, repository.ErrReportUpdateFailed
	}

	return &updated, nil
}

// UpdateReportGenerated - Merge the full scoring result in a single
// atomic update. A reader never observes the generated flag without
// the scoring fields.
func (r *implRepository) UpdateReportGenerated(ctx context.Context, opts repository.UpdateGeneratedOptions) (*model.Report, error) {
	id, err := primitive.ObjectIDFromHex(opts.ReportID)
	if err != nil {
		return nil, repository.ErrReportNotFound
	}

	update := bson.M{"$set": bson.M{
		"file_id":             opts.FileID,
		"audio_type":          opts.AudioType,
		"decoded_text":        opts.DecodedText,
		"no_words":            opts.NoWords,
		"no_del":              opts.NoDel,
		"del_details":         opts.DelDetails,
		"no_ins":              opts.NoIns,
		"ins_details":         opts.InsDetails,
		"no_subs":             opts.NoSubs,
		"subs_details":        opts.SubsDetails,
		"no_miscue":           opts.NoMiscue,
		"no_corr":             opts.NoCorr,
		"wcpm":                opts.WCPM,
		"speech_rate":         opts.SpeechRate,
		"pron_score":          opts.PronScore,
		"percent_attempt":     opts.PercentAttempt,
		"correct_text":        opts.CorrectText,
		"audio_url":           opts.AudioURL,
		"request_time":        opts.RequestTime,
		"response_time":       opts.ResponseTime,
		"is_report_generated": true,
	}}

	var updated model.Report
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.mongo.UpdateReportGenerated: Failed to update report: %v", err)
		return nil, repository.ErrReportUpdateFailed
	}

	return &updated, nil
}

// ListReports - Return every report, unfiltered and unpaginated.
func (r *implRepository) ListReports(ctx context.Context) ([]*model.Report, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		r.l.Errorf(ctx, "report.repository.mongo.ListReports: Failed to query reports: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	result := make([]*model.Report, 0)
	for cursor.Next(ctx) {
		var rpt model.Report
		if err := cursor.Decode(&rpt); err != nil {
			r.l.Errorf(ctx, "report.repository.mongo.ListReports: Failed to decode report: %v", err)
			return nil, err
		}
		result = append(result, &rpt)
	}
	if err := cursor.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.mongo.ListReports: Cursor error: %v", err)
		return nil, err
	}

	return result, nil
}
