// File: database/repository/publication/updates.go
package publicationRepo

import (
	"context"
	"fmt"
	"time"

	"praxia/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoPublicationRepo) touchUpdate(ctx context.Context, filter, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set, _ := update["$set"].(bson.M)
	if set == nil {
		set = bson.M{}
		update["$set"] = set
	}
	set["updatedAt"] = time.Now().UTC()

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoPublicationRepo) UpdateMeta(ctx context.Context, id, title, language, abstract string) error {
	update := bson.M{"$set": bson.M{
		"title":    title,
		"language": language,
		"abstract": abstract,
	}}
	return r.touchUpdate(ctx, bson.M{"id": id}, update)
}

func (r *mongoPublicationRepo) SetStatus(ctx context.Context, id, status string) error {
	return r.touchUpdate(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
}

// UpsertSection replaces the section with a matching ID, or appends it when
// the publication has no such section yet.
func (r *mongoPublicationRepo) UpsertSection(ctx context.Context, id string, section models.Section) error {
	err := r.touchUpdate(ctx,
		bson.M{"id": id, "sections.id": section.ID},
		bson.M{"$set": bson.M{"sections.$": section}},
	)
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return fmt.Errorf("failed to update section %s: %w", section.ID, err)
	}
	// No existing section matched; append instead.
	return r.touchUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$push": bson.M{"sections": section}},
	)
}

func (r *mongoPublicationRepo) RemoveSection(ctx context.Context, id, sectionID string) error {
	return r.touchUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$pull": bson.M{"sections": bson.M{"id": sectionID}}},
	)
}

func (r *mongoPublicationRepo) AddReference(ctx context.Context, id string, ref models.Reference) error {
	return r.touchUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$push": bson.M{"references": ref}},
	)
}

func (r *mongoPublicationRepo) RemoveReference(ctx context.Context, id, refID string) error {
	return r.touchUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$pull": bson.M{"references": bson.M{"id": refID}}},
	)
}
